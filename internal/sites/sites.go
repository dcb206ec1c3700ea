// Package sites holds the URL lists the dataset is built from. The
// defaults ship with the binary; either list can be swapped out with a
// plain-text file (one URL per line) via configuration, which is the same
// format the generate-txt command emits.
package sites

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Gambling is the default list of gambling sites to capture.
var Gambling = []string{
	"https://king.ayo788-pit.com",
	"https://ayo788-pit.com",
}

// NonGambling is the default list of legitimate sites to capture.
var NonGambling = []string{
	"https://www.ovo.id",
	"https://www.tiket.com",
	"https://www.prodia.co.id",
	"https://nu.or.id",
	"https://mail.ru",
}

// LoadFile reads a site list: one URL per line, blank lines and
// #-comments ignored.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open site list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read site list %s: %w", path, err)
	}
	return urls, nil
}

// Resolve returns the override file's contents when a path is set,
// otherwise the built-in defaults.
func Resolve(defaults []string, overridePath string) ([]string, error) {
	if overridePath == "" {
		return defaults, nil
	}
	return LoadFile(overridePath)
}
