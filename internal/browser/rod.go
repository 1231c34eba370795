package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/host"
)

// Rod is a TabAccessor driving a running Chromium over the DevTools protocol.
// Start the browser with --remote-debugging-port and pass its websocket URL.
type Rod struct {
	browser *rod.Browser
	log     *zap.Logger
}

// ConnectRod connects to the DevTools endpoint at controlURL.
func ConnectRod(controlURL string, log *zap.Logger) (*Rod, error) {
	if log == nil {
		log = zap.NewNop()
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("browser: connect %s: %w", controlURL, err)
	}
	log.Debug("browser: connected", zap.String("url", controlURL))

	return &Rod{browser: b, log: log}, nil
}

// ActiveTab implements host.TabAccessor. The focused, visible page wins;
// otherwise the first page target is reported.
func (r *Rod) ActiveTab(ctx context.Context) (host.Tab, error) {
	pages, err := r.browser.Context(ctx).Pages()
	if err != nil {
		return host.Tab{}, fmt.Errorf("browser: list pages: %w", err)
	}
	if len(pages) == 0 {
		return host.Tab{}, ErrNoActiveTab
	}

	active := pages[0]
	for _, p := range pages {
		res, err := p.Context(ctx).Eval(`() => document.visibilityState === "visible" && document.hasFocus()`)
		if err != nil {
			r.log.Debug("browser: focus probe failed", zap.String("target", string(p.TargetID)), zap.Error(err))
			continue
		}
		if res.Value.Bool() {
			active = p
			break
		}
	}

	info, err := active.Info()
	if err != nil {
		return host.Tab{}, fmt.Errorf("browser: page info: %w", err)
	}
	return host.Tab{ID: string(active.TargetID), URL: info.URL, Title: info.Title}, nil
}

// SetTabURL implements host.TabAccessor.
func (r *Rod) SetTabURL(ctx context.Context, tabID, url string) error {
	page, err := r.browser.PageFromTarget(proto.TargetTargetID(tabID))
	if err != nil {
		return fmt.Errorf("browser: tab %s: %w", tabID, err)
	}
	if err := page.Context(ctx).Navigate(url); err != nil {
		return fmt.Errorf("browser: navigate %s: %w", url, err)
	}
	return nil
}

// OpenTab implements host.TabAccessor.
func (r *Rod) OpenTab(ctx context.Context, url string) error {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return fmt.Errorf("browser: open %s: %w", url, err)
	}
	_, err = page.Activate()
	return err
}
