package browser

import "github.com/chromedp/chromedp/device"

// The two emulated profiles every site is captured under. Metrics follow
// a current-generation Android handset and a HiDPI desktop Chrome.
var (
	MobileDevice = device.Info{
		Name:      "Galaxy S24",
		UserAgent: "Mozilla/5.0 (Linux; Android 14; SM-S921B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Mobile Safari/537.36",
		Width:     360,
		Height:    780,
		Scale:     3,
		Mobile:    true,
		Touch:     true,
	}

	DesktopDevice = device.Info{
		Name:      "Desktop Chrome HiDPI",
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		Width:     1280,
		Height:    720,
		Scale:     2,
	}
)
