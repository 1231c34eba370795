// Command feed keeps small numbered reading lists of web pages inside the
// bookmark tree and walks through them.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
	faint = color.New(color.Faint)
)

// flags holds the persistent command line flags.
type flags struct {
	config     string
	profile    string
	tabURL     string
	tabTitle   string
	browserURL string
	verbose    bool
}

func main() {
	var f flags
	root := newRootCmd(&f)
	if err := root.ExecuteContext(context.Background()); err != nil {
		red.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(f *flags) *cobra.Command {
	var e *env

	root := &cobra.Command{
		Use:   "feed",
		Short: "Numbered reading lists inside your bookmarks",
		Long: `feed keeps small numbered "profile" folders of bookmarks under a
"Website Feed" folder. Add the current page to the active profile, step
through the list page by page, jump to a page or pick a random one. Every
page is visited once per day before the random pick repeats.

Without a subcommand feed opens the interactive popup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			e, err = openEnv(cmd.Context(), f)
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), e)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "path to config file (default ~/.config/feed/config.json)")
	pf.StringVarP(&f.profile, "profile", "p", "", "profile to use instead of the active one")
	pf.StringVarP(&f.tabURL, "url", "u", "", "URL of the current page")
	pf.StringVarP(&f.tabTitle, "title", "t", "", "title of the current page")
	pf.StringVar(&f.browserURL, "browser", "", "DevTools websocket URL of a running Chromium")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		statusCmd(&e),
		toggleCmd(&e),
		stepCmd(&e, "next", "Load the next page of the list"),
		stepCmd(&e, "prev", "Load the previous page of the list"),
		gotoCmd(&e),
		randomCmd(&e),
		profileCmd(&e),
		profilesCmd(&e),
		listCmd(&e),
		findCmd(&e),
		importCmd(&e),
		exportCmd(&e),
		checkCmd(&e),
	)
	return root
}
