// Package dataset owns the on-disk layout of the screenshot dataset and
// the maintenance stages that run over it: validation, filename
// normalization and the site-list txt export.
package dataset

import (
	"fmt"
	"path/filepath"
)

// Class labels a dataset partition. Class names double as directory names
// under the dataset root.
type Class string

const (
	ClassGambling    Class = "gambling"
	ClassNonGambling Class = "non_gambling"
)

// Device tags a screenshot with the emulated profile that produced it.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// Layout maps domains to screenshot paths under a single dataset root.
// Every stage of the pipeline goes through the same Layout so the scraper,
// validator and formatter can never disagree about where files live.
type Layout struct {
	Root string
}

// ClassDir returns the directory holding one class partition.
func (l Layout) ClassDir(class Class) string {
	return filepath.Join(l.Root, string(class))
}

// ImageName returns the canonical screenshot filename for a domain.
func ImageName(domain, device string) string {
	return fmt.Sprintf("%s_%s.png", domain, device)
}

// ImagePaths returns the mobile and desktop screenshot paths for a domain.
func (l Layout) ImagePaths(class Class, domain string) (mobile, desktop string) {
	dir := l.ClassDir(class)
	return filepath.Join(dir, ImageName(domain, DeviceMobile)),
		filepath.Join(dir, ImageName(domain, DeviceDesktop))
}
