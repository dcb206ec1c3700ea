package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testGambling    = []string{"https://king.ayo788-pit.com"}
	testNonGambling = []string{"https://www.ovo.id", "https://nu.or.id"}
)

func seedDataset(t *testing.T, layout Layout, class Class, domains []string) {
	t.Helper()
	dir := layout.ClassDir(class)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, domain := range domains {
		mobile, desktop := layout.ImagePaths(class, domain)
		require.NoError(t, os.WriteFile(mobile, []byte("png"), 0o644))
		require.NoError(t, os.WriteFile(desktop, []byte("png"), 0o644))
	}
}

func TestCheckDuplicates(t *testing.T) {
	assert.NoError(t, CheckDuplicates([]string{"https://a.com", "https://b.com"}))

	err := CheckDuplicates([]string{"https://a.com", "https://b.com", "https://a.com"})
	assert.ErrorContains(t, err, "https://a.com")
	assert.ErrorContains(t, err, "count=2")
}

func TestValidateCompleteDataset(t *testing.T) {
	layout := Layout{Root: t.TempDir()}
	seedDataset(t, layout, ClassGambling, []string{"king.ayo788-pit.com"})
	seedDataset(t, layout, ClassNonGambling, []string{"www.ovo.id", "nu.or.id"})

	err := Validate(layout, testGambling, testNonGambling, discardLogger())
	assert.NoError(t, err)
}

func TestValidateMissingFile(t *testing.T) {
	layout := Layout{Root: t.TempDir()}
	seedDataset(t, layout, ClassGambling, []string{"king.ayo788-pit.com"})
	seedDataset(t, layout, ClassNonGambling, []string{"www.ovo.id"})

	// nu.or.id screenshots never scraped
	err := Validate(layout, testGambling, testNonGambling, discardLogger())
	require.Error(t, err)
	assert.ErrorContains(t, err, "nu.or.id")
}

func TestCheckUnexpectedFiles(t *testing.T) {
	layout := Layout{Root: t.TempDir()}
	seedDataset(t, layout, ClassGambling, []string{"king.ayo788-pit.com"})

	stray := filepath.Join(layout.ClassDir(ClassGambling), "notes.txt")
	require.NoError(t, os.WriteFile(stray, []byte("scratch"), 0o644))

	unexpected, err := CheckUnexpected(layout, ClassGambling, testGambling, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, unexpected)

	// strays are warnings, not validation failures
	seedDataset(t, layout, ClassNonGambling, []string{"www.ovo.id", "nu.or.id"})
	assert.NoError(t, Validate(layout, testGambling, testNonGambling, discardLogger()))
}

func TestCheckUnexpectedMissingDir(t *testing.T) {
	layout := Layout{Root: t.TempDir()}
	unexpected, err := CheckUnexpected(layout, ClassGambling, testGambling, discardLogger())
	assert.NoError(t, err)
	assert.Empty(t, unexpected)
}
