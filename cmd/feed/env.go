package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/browser"
	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/logging"
	"github.com/nikbrunner/feed/internal/storage"
)

// env is everything a command needs, opened once per invocation.
type env struct {
	cfg     *storage.Config
	log     *zap.Logger
	backend *storage.Backend
	folders *host.BookmarkHost
	feed    *feed.Feed
	profile string // --profile override, "" = active profile
}

func openEnv(ctx context.Context, f *flags) (*env, error) {
	configPath := f.config
	if configPath == "" {
		var err error
		configPath, err = storage.DefaultConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
	}
	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dir := filepath.Dir(configPath)

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = logging.DefaultPath(dir)
	}
	log, err := logging.New(logging.Options{Path: logPath, Verbose: f.verbose})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	backend, err := storage.Open(cfg, dir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	store, err := backend.Storage.Load()
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	folders := host.NewBookmarkHost(store, backend.Storage)

	tabs, err := openTabs(f, cfg, log)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	log.Debug("environment ready",
		zap.String("config", configPath),
		zap.String("backend", cfg.Backend))

	return &env{
		cfg:     cfg,
		log:     log,
		backend: backend,
		folders: folders,
		feed: feed.New(feed.Params{
			Folders:        folders,
			Tabs:           tabs,
			Settings:       backend.Settings,
			RootTitle:      cfg.RootFolder,
			ParentFolderID: cfg.ParentFolderID,
			ProfileMin:     cfg.ProfileMin,
			ProfileMax:     cfg.ProfileMax,
			DefaultProfile: cfg.DefaultProfile,
			Now:            time.Now,
			Log:            log,
		}),
		profile: f.profile,
	}, nil
}

// openTabs picks the tab accessor: a DevTools connection when a browser URL
// is configured, otherwise the page given by --url/--title.
func openTabs(f *flags, cfg *storage.Config, log *zap.Logger) (host.TabAccessor, error) {
	browserURL := f.browserURL
	if browserURL == "" {
		browserURL = cfg.BrowserURL
	}
	if browserURL != "" {
		return browser.ConnectRod(browserURL, log)
	}

	static := browser.NewStatic(host.Tab{URL: f.tabURL, Title: f.tabTitle})
	static.Launch = browser.OpenURL
	return static, nil
}

// Close flushes the log and closes the storage.
func (e *env) Close() error {
	if e == nil {
		return nil
	}
	_ = e.log.Sync()
	return e.backend.Close()
}

// activeProfile returns the --profile override or the stored active profile.
func (e *env) activeProfile(ctx context.Context) (string, error) {
	if e.profile != "" {
		return e.profile, nil
	}
	return e.feed.ActiveProfile(ctx)
}
