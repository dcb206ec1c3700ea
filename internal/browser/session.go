// Package browser wraps a shared headless-Chromium instance behind a
// small screenshot API. One browser process serves the whole run; every
// capture gets its own tab with device emulation applied per shot.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/device"
)

// settleTimeout bounds the overlay-stripping and screenshot steps that
// run after navigation; navigation has its own, longer timeout.
const settleTimeout = 15 * time.Second

// Session owns the browser process and hands out screenshots.
type Session struct {
	log           *log.Logger
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	navTimeout    time.Duration
}

// NewSession launches Chromium and verifies it is up.
func NewSession(logger *log.Logger, headless bool, navTimeout time.Duration) (*Session, error) {
	logger.Info("launching chromium browser", "headless", headless)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("headless", headless),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Run with no actions forces the browser to start now rather than on
	// the first capture.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &Session{
		log:           logger,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		navTimeout:    navTimeout,
	}, nil
}

// Capture renders url under the given device profile and returns the
// viewport as PNG bytes. Navigation failures are tolerated: whatever
// rendered before the timeout still gets captured, matching how flaky
// sites are best-effort in a bulk run.
func (s *Session) Capture(ctx context.Context, dev device.Info, url string) ([]byte, error) {
	if s.browserCtx == nil {
		return nil, fmt.Errorf("browser session is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tabCtx, cancel := chromedp.NewContext(s.browserCtx)
	defer cancel()

	s.listenForDialogs(tabCtx, url)

	navCtx, navCancel := context.WithTimeout(tabCtx, s.navTimeout)
	defer navCancel()

	err := chromedp.Run(navCtx,
		chromedp.Emulate(dev),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		s.log.Warn("failed to navigate to page", "url", url, "device", dev.Name, "err", err)
	}

	shotCtx, shotCancel := context.WithTimeout(tabCtx, settleTimeout)
	defer shotCancel()

	if err := chromedp.Run(shotCtx, chromedp.Evaluate(overlayScript, nil)); err != nil {
		s.log.Warn("error setting up overlay removal", "url", url, "err", err)
	}

	var buf []byte
	if err := chromedp.Run(shotCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("screenshot %s (%s): %w", url, dev.Name, err)
	}
	return buf, nil
}

// CapturePair takes the mobile and desktop screenshots for one URL.
func (s *Session) CapturePair(ctx context.Context, url string) (mobile, desktop []byte, err error) {
	s.log.Debug("capturing mobile screenshot", "url", url)
	mobile, err = s.Capture(ctx, MobileDevice, url)
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug("capturing desktop screenshot", "url", url)
	desktop, err = s.Capture(ctx, DesktopDevice, url)
	if err != nil {
		return nil, nil, err
	}
	return mobile, desktop, nil
}

// listenForDialogs auto-accepts javascript dialogs so alert() and
// confirm() walls cannot stall a capture.
func (s *Session) listenForDialogs(tabCtx context.Context, url string) {
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		dialog, ok := ev.(*page.EventJavascriptDialogOpening)
		if !ok {
			return
		}
		s.log.Debug("dialog detected", "url", url, "type", dialog.Type, "message", dialog.Message)
		go func() {
			if err := chromedp.Run(tabCtx, page.HandleJavaScriptDialog(true)); err != nil {
				s.log.Debug("failed to accept dialog", "url", url, "err", err)
			}
		}()
	})
}

// Close shuts the browser down.
func (s *Session) Close() {
	s.log.Info("shutting down browser session")
	if s.browserCancel != nil {
		s.browserCancel()
	}
	if s.allocCancel != nil {
		s.allocCancel()
	}
}
