// Package scrape drives dataset capture: it walks the site lists, skips
// domains that are already on disk, probes the rest and fans the captures
// out over a bounded worker pool.
package scrape

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"scraper/internal/dataset"
	"scraper/internal/urlkit"
)

// Capturer renders one URL under both device profiles. *browser.Session
// implements it; tests substitute a fake.
type Capturer interface {
	CapturePair(ctx context.Context, url string) (mobile, desktop []byte, err error)
}

// Target pairs a site URL with the dataset class it belongs to.
type Target struct {
	Class dataset.Class
	URL   string
}

// Targets builds the work list, non-gambling first.
func Targets(gambling, nonGambling []string) []Target {
	targets := make([]Target, 0, len(gambling)+len(nonGambling))
	for _, site := range nonGambling {
		targets = append(targets, Target{Class: dataset.ClassNonGambling, URL: site})
	}
	for _, site := range gambling {
		targets = append(targets, Target{Class: dataset.ClassGambling, URL: site})
	}
	return targets
}

// Runner captures screenshots for a list of targets.
type Runner struct {
	Log         *log.Logger
	Layout      dataset.Layout
	Browser     Capturer
	Probe       func(url string) bool
	Concurrency int
	Progress    *Progress
}

// Run processes every target. Individual failures are logged and counted;
// the error reports how many sites failed once all work is done.
func (r *Runner) Run(ctx context.Context, targets []Target) error {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	r.Log.Info("starting scrape", "sites", len(targets), "concurrency", concurrency)
	defer r.Progress.Stop()

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	var failed atomic.Int64

	for _, target := range targets {
		wg.Add(1)
		sem <- struct{}{}

		go func(target Target) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := r.scrapeOne(ctx, target); err != nil {
				failed.Add(1)
				r.Log.Error("site failed", "url", target.URL, "class", target.Class, "err", err)
			}
		}(target)
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d sites failed", n, len(targets))
	}
	r.Log.Info("scrape finished", "sites", len(targets))
	return nil
}

func (r *Runner) scrapeOne(ctx context.Context, target Target) error {
	normalized, domain, err := urlkit.Domain(target.URL)
	if err != nil {
		return err
	}

	mobilePath, desktopPath := r.Layout.ImagePaths(target.Class, domain)
	if fileExists(mobilePath) && fileExists(desktopPath) {
		r.Log.Info("skipping scrape (already exists)", "domain", domain)
		return nil
	}

	slot := r.Progress.Start(domain)
	defer r.Progress.Done(slot)

	r.Log.Info("starting scrape", "url", normalized)

	if r.Probe != nil && !r.Probe(normalized) {
		return fmt.Errorf("url not accessible or not html: %s", normalized)
	}

	mobile, desktop, err := r.Browser.CapturePair(ctx, normalized)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.Layout.ClassDir(target.Class), 0o755); err != nil {
		return fmt.Errorf("create class dir: %w", err)
	}
	if err := os.WriteFile(mobilePath, mobile, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", mobilePath, err)
	}
	if err := os.WriteFile(desktopPath, desktop, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", desktopPath, err)
	}

	r.Log.Info("screenshots saved", "url", normalized, "mobile", mobilePath, "desktop", desktopPath)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
