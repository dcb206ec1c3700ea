package dataset

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"scraper/internal/urlkit"
)

// CheckDuplicates fails when the same URL appears more than once across
// the combined site lists. Duplicate entries would make two list entries
// claim the same screenshot files.
func CheckDuplicates(urls []string) error {
	seen := make(map[string]int, len(urls))
	for _, site := range urls {
		seen[site]++
	}
	for _, site := range urls {
		if count := seen[site]; count > 1 {
			return fmt.Errorf("duplicate site found: %s (count=%d)", site, count)
		}
	}
	return nil
}

// CheckFiles verifies that every listed site has both device screenshots
// in its class directory.
func CheckFiles(layout Layout, class Class, sites []string, logger *log.Logger) error {
	logger.Info("checking dataset file existence", "dir", layout.ClassDir(class))
	for _, site := range sites {
		_, domain, err := urlkit.Domain(site)
		if err != nil {
			return fmt.Errorf("invalid site url in list: %w", err)
		}
		mobile, desktop := layout.ImagePaths(class, domain)
		for _, expected := range []string{mobile, desktop} {
			info, err := os.Stat(expected)
			if err != nil || info.IsDir() {
				logger.Error("expected dataset file not found", "path", expected)
				return fmt.Errorf("expected dataset file not found: %s", expected)
			}
		}
	}
	logger.Info("all expected dataset files are present", "dir", layout.ClassDir(class))
	return nil
}

// CheckUnexpected warns about files in a class directory that no list
// entry accounts for. Strays are reported, not deleted.
func CheckUnexpected(layout Layout, class Class, sites []string, logger *log.Logger) ([]string, error) {
	dir := layout.ClassDir(class)
	logger.Info("checking for unexpected dataset files", "dir", dir)

	expected := make(map[string]bool, len(sites)*2)
	for _, site := range sites {
		_, domain, err := urlkit.Domain(site)
		if err != nil {
			return nil, fmt.Errorf("invalid site url in list: %w", err)
		}
		expected[ImageName(domain, DeviceMobile)] = true
		expected[ImageName(domain, DeviceDesktop)] = true
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset dir %s: %w", dir, err)
	}

	var unexpected []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !expected[entry.Name()] {
			logger.Warn("unexpected file in dataset", "dir", dir, "file", entry.Name())
			unexpected = append(unexpected, entry.Name())
		}
	}
	return unexpected, nil
}

// Validate runs the full dataset check: duplicate URLs, missing
// screenshots for either class, and stray files.
func Validate(layout Layout, gambling, nonGambling []string, logger *log.Logger) error {
	logger.Info("validating dataset", "root", layout.Root)

	combined := make([]string, 0, len(gambling)+len(nonGambling))
	combined = append(combined, nonGambling...)
	combined = append(combined, gambling...)
	if err := CheckDuplicates(combined); err != nil {
		return err
	}

	if err := CheckFiles(layout, ClassGambling, gambling, logger); err != nil {
		return err
	}
	if err := CheckFiles(layout, ClassNonGambling, nonGambling, logger); err != nil {
		return err
	}

	if _, err := CheckUnexpected(layout, ClassGambling, gambling, logger); err != nil {
		return err
	}
	if _, err := CheckUnexpected(layout, ClassNonGambling, nonGambling, logger); err != nil {
		return err
	}

	logger.Info("dataset validation completed",
		"gambling_sites", len(gambling),
		"non_gambling_sites", len(nonGambling),
		"files_checked", 2*len(combined))
	return nil
}
