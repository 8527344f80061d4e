// Package headless renders job-board pages with headless Chrome so that
// client-side markup exists before parsing.
package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// Defaults applied when a Config field is zero.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultSettleDelay       = 3 * time.Second
)

// Config controls the behavior of the headless renderer.
type Config struct {
	UserAgent         string
	NavigationTimeout time.Duration
	// SettleDelay is the fixed wait after DOM content load for client-side
	// rendering to finish. There is no content-ready selector to poll on
	// these boards, so a tunable constant is the synchronization primitive.
	SettleDelay time.Duration
}

// Renderer fetches fully rendered DOM snapshots via chromedp.
type Renderer struct {
	cfg Config
}

// New creates a Renderer backed by chromedp.
func New(cfg Config) *Renderer {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	return &Renderer{cfg: cfg}
}

// Render navigates to url in a fresh browser instance, waits for DOM
// content plus the settle delay, and returns the rendered HTML. The
// browser is released on every exit path.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	taskCtx, cancel := context.WithTimeout(taskCtx, r.cfg.NavigationTimeout+r.cfg.SettleDelay)
	defer cancel()

	var html string
	actions := []chromedp.Action{
		r.userAgentAction(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(r.cfg.SettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}
	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return "", fmt.Errorf("chromedp run: %w", err)
	}
	return html, nil
}

func (r *Renderer) userAgentAction() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if r.cfg.UserAgent == "" {
			return nil
		}
		if err := emulation.SetUserAgentOverride(r.cfg.UserAgent).Do(ctx); err != nil {
			return fmt.Errorf("set user-agent: %w", err)
		}
		return nil
	})
}
