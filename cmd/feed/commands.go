package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/feed/internal/culler"
	"github.com/nikbrunner/feed/internal/exporter"
	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/importer"
	"github.com/nikbrunner/feed/internal/model"
	"github.com/nikbrunner/feed/internal/picker"
	"github.com/nikbrunner/feed/internal/search"
	"github.com/nikbrunner/feed/internal/tui"
)

func runTUI(ctx context.Context, e *env) error {
	app := tui.NewApp(tui.AppParams{
		Feed:    e.feed,
		Context: ctx,
		Profile: e.profile,
	})
	_, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// printTarget reports where a navigation landed.
func printTarget(target *model.Node, profile string) {
	if target == nil {
		faint.Printf("List %s is empty\n", profile)
		return
	}
	fmt.Printf("%s %s\n", green.Sprint("→"), search.Label(*target))
	faint.Println("  " + target.URL)
}

func statusCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the current page is in the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			status, err := (*e).feed.Status(ctx, profile)
			if err != nil {
				return err
			}

			fmt.Printf("Profile  %s\n", cyan.Sprint(status.Profile))
			if status.Tab.URL == "" {
				fmt.Println("Page     " + faint.Sprint("none"))
			} else {
				fmt.Printf("Page     %s\n", status.Tab.URL)
			}
			if status.IsMember() {
				fmt.Printf("In list  %s (%s)\n", green.Sprint("yes"), status.PageLabel())
			} else {
				fmt.Printf("In list  no (%s)\n", status.PageInfo())
			}
			return nil
		},
	}
}

func toggleCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Add the current page to the list, or remove it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			result, err := (*e).feed.Toggle(ctx, profile)
			if err != nil {
				return err
			}

			switch result {
			case feed.Created:
				green.Printf("Added to list %s\n", profile)
			case feed.Removed:
				green.Printf("Removed from list %s\n", profile)
			default:
				faint.Println("Nothing to do: no current page (use --url)")
			}
			return nil
		},
	}
}

func stepCmd(e **env, name, short string) *cobra.Command {
	dir := feed.Next
	if name == "prev" {
		dir = feed.Prev
	}
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			target, err := (*e).feed.Step(ctx, profile, dir)
			if err != nil {
				return err
			}
			printTarget(target, profile)
			return nil
		},
	}
}

func gotoCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <page>",
		Short: "Load page n of the list (clamped to the list)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			target, err := (*e).feed.Goto(ctx, profile, args[0])
			if err != nil {
				return err
			}
			printTarget(target, profile)
			return nil
		},
	}
}

func randomCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Load a random page; every page comes up once a day before repeats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			target, err := (*e).feed.Random(ctx, profile)
			if err != nil {
				return err
			}
			printTarget(target, profile)
			return nil
		},
	}
}

func profileCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "profile [name]",
		Short: "Show or select the active profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				profile, err := (*e).feed.ActiveProfile(ctx)
				if err != nil {
					return err
				}
				fmt.Println(profile)
				return nil
			}

			name := strings.TrimSpace(args[0])
			if err := (*e).feed.SelectProfile(ctx, name); err != nil {
				return err
			}
			if _, err := (*e).feed.Registry().EnsureProfileFolder(ctx, name); err != nil {
				return err
			}
			green.Printf("Active profile: %s\n", name)
			return nil
		},
	}
}

func profilesCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			active, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			options, err := (*e).feed.ProfileOptions(ctx)
			if err != nil {
				return err
			}
			for _, name := range options {
				if name == active {
					cyan.Printf("* %s\n", name)
				} else {
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		},
	}
}

func listCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pages of the profile in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			status, err := (*e).feed.Status(ctx, profile)
			if err != nil {
				return err
			}
			bookmarks, err := (*e).feed.Bookmarks(ctx, profile)
			if err != nil {
				return err
			}
			if len(bookmarks) == 0 {
				faint.Printf("List %s is empty\n", profile)
				return nil
			}

			width := len(fmt.Sprint(len(bookmarks)))
			for i, b := range bookmarks {
				line := fmt.Sprintf("%*d  %s  %s", width, i+1, search.Label(b), faint.Sprint(b.URL))
				if status.IsMember() && int(status.Position) == i {
					line = green.Sprint("▶ ") + line
				} else {
					line = "  " + line
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func findCmd(e **env) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy find a page of the list and open it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := strings.Join(args, " ")
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			bookmarks, err := (*e).feed.Bookmarks(ctx, profile)
			if err != nil {
				return err
			}

			results := search.Bookmarks(bookmarks, query)
			var selected *model.Node
			switch len(results) {
			case 0:
				fmt.Printf("No pages found for '%s'\n", query)
				return nil
			case 1:
				selected = results[0].Bookmark
			default:
				final, err := tea.NewProgram(picker.New(results, profile, query), tea.WithContext(ctx)).Run()
				if err != nil {
					return fmt.Errorf("picker: %w", err)
				}
				p := final.(picker.Picker)
				if p.Cancelled() {
					return nil
				}
				selected = p.Selected()
			}
			if selected == nil {
				return nil
			}

			fmt.Printf("Opening: %s\n", search.Label(*selected))
			return (*e).feed.Open(ctx, selected.URL)
		},
	}
}

func importCmd(e **env) *cobra.Command {
	var byFolder bool
	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import pages from a Netscape bookmark file into the profile",
		Long: `Import reads a browser bookmark export and appends its pages to the
active profile. With --by-folder every folder of the file becomes the
profile of the same name. Pages already in a list are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			entries, err := importer.ParseHTML(file)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			groups := map[string][]importer.Entry{profile: entries}
			if byFolder {
				groups = importer.GroupByFolder(entries)
				if loose, ok := groups[""]; ok {
					delete(groups, "")
					groups[profile] = append(groups[profile], loose...)
				}
			}

			for _, name := range slices.Sorted(maps.Keys(groups)) {
				folderID, err := (*e).feed.Registry().EnsureProfileFolder(ctx, name)
				if err != nil {
					return err
				}
				result, err := importer.Import(ctx, (*e).folders, folderID, groups[name])
				if err != nil {
					return err
				}
				fmt.Printf("Profile %s: imported %d pages", cyan.Sprint(name), result.Added)
				if result.Skipped > 0 {
					fmt.Printf(" (%d duplicates skipped)", result.Skipped)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byFolder, "by-folder", false, "import each folder into the profile of the same name")
	return cmd
}

func exportCmd(e **env) *cobra.Command {
	var onlyProfile bool
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the lists to a Netscape bookmark file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputPath := ""
			if len(args) == 1 {
				outputPath = args[0]
			} else {
				var err error
				if outputPath, err = exporter.DefaultExportPath(); err != nil {
					return err
				}
			}

			var (
				folderID string
				title    = (*e).cfg.RootFolder
				err      error
			)
			if onlyProfile {
				title, err = (*e).activeProfile(ctx)
				if err != nil {
					return err
				}
				folderID, err = (*e).feed.Registry().EnsureProfileFolder(ctx, title)
			} else {
				folderID, err = (*e).feed.Registry().RootFolder(ctx)
			}
			if err != nil {
				return err
			}

			out, err := exporter.ExportHTML(ctx, (*e).folders, folderID, title)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
				return err
			}
			green.Printf("Exported %s to %s\n", title, outputPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyProfile, "profile-only", false, "export only the active profile")
	return cmd
}

func checkCmd(e **env) *cobra.Command {
	var (
		remove  bool
		exclude []string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find pages of the list that no longer load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			profile, err := (*e).activeProfile(ctx)
			if err != nil {
				return err
			}
			bookmarks, err := (*e).feed.Bookmarks(ctx, profile)
			if err != nil {
				return err
			}

			results := culler.Check(ctx, bookmarks, culler.Options{
				ExcludeDomains: exclude,
				Log:            (*e).log,
				OnProgress: func(done, total int) {
					faint.Fprintf(os.Stderr, "\rChecked %d/%d", done, total)
				},
			})
			if len(results) > 0 {
				fmt.Fprintln(os.Stderr)
			}

			for _, r := range results {
				switch r.Status {
				case culler.Dead:
					red.Printf("%3d  dead         %s\n", r.Page, r.Bookmark.URL)
				case culler.Unreachable:
					fmt.Printf("%3d  unreachable  %s %s\n", r.Page, r.Bookmark.URL, faint.Sprint(r.Error))
				}
			}

			dead := culler.DeadResults(results)
			if !remove || len(dead) == 0 {
				fmt.Printf("%d pages checked, %d dead\n", len(results), len(dead))
				return nil
			}
			for _, r := range dead {
				if err := (*e).folders.Remove(ctx, r.Bookmark.ID); err != nil {
					return fmt.Errorf("remove %s: %w", r.Bookmark.URL, err)
				}
			}
			green.Printf("Removed %d dead pages from list %s\n", len(dead), profile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove dead pages from the list")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "domains where 404 means private, not dead")
	return cmd
}
