// Package browser provides host.TabAccessor implementations.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/nikbrunner/feed/internal/host"
)

// ErrNoActiveTab is returned when no tab can be reported as active.
var ErrNoActiveTab = errors.New("no active tab")

// Static is a TabAccessor whose active tab is described up front (for
// example from command line flags). Navigations update the recorded tab and
// are handed to Launch.
type Static struct {
	mu     sync.Mutex
	tab    host.Tab
	opened []string

	// Launch shows url to the user. nil = record only.
	Launch func(url string) error
}

// NewStatic creates a Static accessor for the given tab.
func NewStatic(tab host.Tab) *Static {
	if tab.ID == "" {
		tab.ID = "0"
	}
	return &Static{tab: tab}
}

// ActiveTab implements host.TabAccessor.
func (s *Static) ActiveTab(_ context.Context) (host.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab, nil
}

// SetTabURL implements host.TabAccessor.
func (s *Static) SetTabURL(_ context.Context, tabID, url string) error {
	s.mu.Lock()
	if tabID != s.tab.ID {
		s.mu.Unlock()
		return fmt.Errorf("tab %q: %w", tabID, ErrNoActiveTab)
	}
	s.tab.URL = url
	s.tab.Title = ""
	s.mu.Unlock()

	return s.launch(url)
}

// OpenTab implements host.TabAccessor.
func (s *Static) OpenTab(_ context.Context, url string) error {
	s.mu.Lock()
	s.opened = append(s.opened, url)
	s.mu.Unlock()

	return s.launch(url)
}

// Opened returns the URLs passed to OpenTab so far.
func (s *Static) Opened() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.opened...)
}

func (s *Static) launch(url string) error {
	if s.Launch == nil {
		return nil
	}
	return s.Launch(url)
}

// OpenURL opens a URL in the default browser.
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("open %s: unsupported platform %s", url, runtime.GOOS)
	}
	return cmd.Start()
}
