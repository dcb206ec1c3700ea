package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// knownSLDs lists second-level domains that form multi-level TLDs
// (nu.or.id, prodia.co.id, bbc.co.uk). Reducing such a name to its last
// two labels would leave only the registry suffix.
var knownSLDs = map[string]bool{
	"ac":     true,
	"biz":    true,
	"co":     true,
	"desa":   true,
	"go":     true,
	"mil":    true,
	"my":     true,
	"net":    true,
	"or":     true,
	"ponpes": true,
	"sch":    true,
	"web":    true,
}

var (
	parenDeviceRe = regexp.MustCompile(`\((\w+)\)`)
	parenStripRe  = regexp.MustCompile(`_?\([^)]+\)_?`)
	localeRe      = regexp.MustCompile(`_[a-z]{2}-[a-z]{2}`)
	tldRe         = regexp.MustCompile(`^[a-z]+`)
)

// FormatFilename normalizes a screenshot filename down to
// "<domain>_<device><ext>". Scraped filenames arrive in many shapes:
//
//	www.ovo.id_(desktop).png                  -> ovo.id_desktop.png
//	www.tiket.com_en-id(mobile).png           -> tiket.com_mobile.png
//	mail.ru__solution429=...&autologin=no(desktop).png -> mail.ru_desktop.png
//	prodia.co.id_id_mobile.png                -> prodia.co.id_mobile.png
//
// With keepSubdomains false the domain is further reduced to its
// registrable part (king.ayo788-pit.com -> ayo788-pit.com), honoring
// multi-level TLDs (nu.or.id stays nu.or.id).
func FormatFilename(filename string, keepSubdomains bool, logger *log.Logger) string {
	logger.Debug("processing filename", "name", filename)

	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)

	// Device tag, either "(desktop)" style or a "_desktop" suffix.
	var device string
	if m := parenDeviceRe.FindStringSubmatch(name); m != nil {
		device = m[1]
		name = parenStripRe.ReplaceAllString(name, "")
	} else if strings.HasSuffix(name, "_"+DeviceDesktop) {
		device = DeviceDesktop
		name = strings.TrimSuffix(name, "_"+DeviceDesktop)
	} else if strings.HasSuffix(name, "_"+DeviceMobile) {
		device = DeviceMobile
		name = strings.TrimSuffix(name, "_"+DeviceMobile)
	}

	// Query junk lands after a double underscore.
	if idx := strings.Index(name, "__"); idx != -1 {
		name = name[:idx]
	}

	// Locale codes like "_en-id".
	name = localeRe.ReplaceAllString(name, "")
	name = strings.TrimRight(name, "_")

	name = strings.TrimPrefix(name, "www.")
	name = strings.TrimPrefix(name, "m.")

	// Anything after the first underscore is path or tracking tokens.
	if idx := strings.Index(name, "_"); idx != -1 {
		name = name[:idx]
	}

	// Cut trailing path segments glued after the TLD.
	if lastDot := strings.LastIndex(name, "."); lastDot != -1 {
		if tld := tldRe.FindString(name[lastDot+1:]); tld != "" {
			name = name[:lastDot+1+len(tld)]
		}
	}

	// Duplicated TLD suffix, e.g. "prodia.co.id_id" -> "prodia.co.id".
	if lastDot := strings.LastIndex(name, "."); lastDot != -1 {
		tldPart := name[lastDot+1:]
		if parts := strings.Split(tldPart, "_"); len(parts) >= 2 && parts[0] == parts[1] {
			name = name[:lastDot+1] + parts[0]
		}
	}

	domain := name
	if !keepSubdomains {
		parts := strings.Split(name, ".")
		switch {
		case len(parts) >= 3 && knownSLDs[parts[len(parts)-2]]:
			domain = strings.Join(parts[len(parts)-3:], ".")
		case len(parts) >= 2:
			domain = strings.Join(parts[len(parts)-2:], ".")
		}
	}

	var formatted string
	if device != "" {
		formatted = domain + "_" + device + ext
	} else {
		formatted = domain + ext
	}
	logger.Debug("formatted filename", "from", filename, "to", formatted)
	return formatted
}

// BatchRename normalizes every regular file in dir with FormatFilename.
// It returns the renamed and unchanged counts; a missing or empty
// directory is an error.
func BatchRename(dir string, keepSubdomains bool, logger *log.Logger) (renamed, unchanged int, err error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0, 0, fmt.Errorf("%s is not a valid directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return 0, 0, fmt.Errorf("no files found in %s", dir)
	}

	logger.Info("formatting filenames", "dir", dir, "files", len(files))

	for _, filename := range files {
		formatted := FormatFilename(filename, keepSubdomains, logger)
		if formatted == filename {
			logger.Info("no change needed", "file", filename)
			unchanged++
			continue
		}

		oldPath := filepath.Join(dir, filename)
		newPath := filepath.Join(dir, formatted)
		if err := os.Rename(oldPath, newPath); err != nil {
			logger.Error("rename failed", "file", filename, "err", err)
			continue
		}
		logger.Info("renamed", "from", filename, "to", formatted)
		renamed++
	}

	logger.Info("batch renaming completed", "dir", dir, "renamed", renamed, "unchanged", unchanged)
	return renamed, unchanged, nil
}
