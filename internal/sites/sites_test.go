package sites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.txt")
	content := "# curated list\nhttps://www.ovo.id\n\nhttps://nu.or.id\n  https://mail.ru  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	urls, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.ovo.id", "https://nu.or.id", "https://mail.ru"}, urls)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	urls, err := Resolve(NonGambling, "")
	require.NoError(t, err)
	assert.Equal(t, NonGambling, urls)

	path := filepath.Join(t.TempDir(), "override.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://example.org\n"), 0o644))

	urls, err = Resolve(NonGambling, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org"}, urls)
}
