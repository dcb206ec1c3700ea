package scrape

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scraper/internal/dataset"
)

type fakeCapturer struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeCapturer) CapturePair(ctx context.Context, url string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	if f.fail[url] {
		return nil, nil, errors.New("capture blew up")
	}
	return []byte("mobile-png"), []byte("desktop-png"), nil
}

func newTestRunner(t *testing.T, capturer *fakeCapturer) *Runner {
	t.Helper()
	return &Runner{
		Log:         log.New(io.Discard),
		Layout:      dataset.Layout{Root: t.TempDir()},
		Browser:     capturer,
		Probe:       func(string) bool { return true },
		Concurrency: 2,
	}
}

func TestTargetsOrder(t *testing.T) {
	targets := Targets(
		[]string{"https://king.ayo788-pit.com"},
		[]string{"https://www.ovo.id", "https://nu.or.id"},
	)

	require.Len(t, targets, 3)
	assert.Equal(t, dataset.ClassNonGambling, targets[0].Class)
	assert.Equal(t, dataset.ClassNonGambling, targets[1].Class)
	assert.Equal(t, dataset.ClassGambling, targets[2].Class)
	assert.Equal(t, "https://king.ayo788-pit.com", targets[2].URL)
}

func TestRunWritesScreenshots(t *testing.T) {
	capturer := &fakeCapturer{}
	runner := newTestRunner(t, capturer)

	targets := Targets(
		[]string{"https://king.ayo788-pit.com"},
		[]string{"https://www.ovo.id"},
	)
	require.NoError(t, runner.Run(context.Background(), targets))

	mobile, desktop := runner.Layout.ImagePaths(dataset.ClassNonGambling, "www.ovo.id")
	for _, path := range []string{mobile, desktop} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}

	mobile, desktop = runner.Layout.ImagePaths(dataset.ClassGambling, "king.ayo788-pit.com")
	assert.FileExists(t, mobile)
	assert.FileExists(t, desktop)
}

func TestRunSkipsExistingScreenshots(t *testing.T) {
	capturer := &fakeCapturer{}
	runner := newTestRunner(t, capturer)

	targets := []Target{{Class: dataset.ClassNonGambling, URL: "https://www.ovo.id"}}
	require.NoError(t, runner.Run(context.Background(), targets))
	require.Len(t, capturer.calls, 1)

	// Second run finds both files on disk and never touches the browser.
	require.NoError(t, runner.Run(context.Background(), targets))
	assert.Len(t, capturer.calls, 1)
}

func TestRunCountsFailures(t *testing.T) {
	capturer := &fakeCapturer{fail: map[string]bool{"https://www.ovo.id": true}}
	runner := newTestRunner(t, capturer)

	targets := Targets(nil, []string{"https://www.ovo.id", "https://nu.or.id"})
	err := runner.Run(context.Background(), targets)
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2 sites failed")

	// The healthy site still made it to disk.
	mobile, _ := runner.Layout.ImagePaths(dataset.ClassNonGambling, "nu.or.id")
	assert.FileExists(t, mobile)
}

func TestRunRejectsInaccessibleSites(t *testing.T) {
	capturer := &fakeCapturer{}
	runner := newTestRunner(t, capturer)
	runner.Probe = func(string) bool { return false }

	err := runner.Run(context.Background(), Targets(nil, []string{"https://www.ovo.id"}))
	require.Error(t, err)
	assert.Empty(t, capturer.calls)
}
