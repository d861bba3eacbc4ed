package player

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserOptions configures the preview browser
type BrowserOptions struct {
	URL        string
	Headless   bool
	Width      int
	Height     int
	Timeout    time.Duration
	ProfileDir string // Chrome/Chromium profile directory for authenticated sessions
}

// Session wraps the Rod browser and the page keys are sent to
type Session struct {
	browser *rod.Browser
	page    *rod.Page
}

// Launch starts a browser, opens the target page and focuses it.
func Launch(opts BrowserOptions) (*Session, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.URL == "" {
		opts.URL = "about:blank"
	}

	path, _ := launcher.LookPath()
	l := launcher.New().Bin(path).Headless(opts.Headless)

	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	s := &Session{browser: browser}

	page, err := browser.Page(proto.TargetCreateTarget{URL: opts.URL})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("opening %s: %w", opts.URL, err)
	}
	s.page = page

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if err := page.Timeout(opts.Timeout).WaitLoad(); err != nil {
		s.Close()
		return nil, fmt.Errorf("waiting for %s: %w", opts.URL, err)
	}

	// Don't hang on persistent connections
	page.Timeout(5*time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()

	return s, nil
}

// Close cleans up browser resources
func (s *Session) Close() {
	if s.page != nil {
		s.page.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
}

// Page returns the underlying Rod page
func (s *Session) Page() *rod.Page {
	return s.page
}

// Keyboard returns the page keyboard for Play.
func (s *Session) Keyboard() Keyboard {
	return s.page.Keyboard
}

// Capture takes a screenshot of the current viewport.
func (s *Session) Capture() (image.Image, error) {
	data, err := s.page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return img, nil
}
