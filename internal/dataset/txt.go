package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Exported site-list filenames. LoadFile in the sites package reads the
// same one-URL-per-line format back.
const (
	GamblingTxt    = "gambling_sites.txt"
	NonGamblingTxt = "non_gambling_sites.txt"
)

func writeSiteList(path string, sites []string) error {
	var b strings.Builder
	for _, site := range sites {
		b.WriteString(site)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write site list %s: %w", path, err)
	}
	return nil
}

// WriteSiteLists exports both site lists as txt artifacts under dir.
func WriteSiteLists(dir string, gambling, nonGambling []string, logger *log.Logger) error {
	logger.Info("creating txt files for gambling and non-gambling sites")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create txt output dir: %w", err)
	}
	if err := writeSiteList(filepath.Join(dir, GamblingTxt), gambling); err != nil {
		return err
	}
	if err := writeSiteList(filepath.Join(dir, NonGamblingTxt), nonGambling); err != nil {
		return err
	}

	logger.Info("txt files created",
		"gambling_sites", len(gambling),
		"non_gambling_sites", len(nonGambling))
	return nil
}
