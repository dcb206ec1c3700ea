// Package urlkit holds the small URL helpers shared by the scrape and
// validation stages.
package urlkit

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Domain normalizes a raw URL down to scheme://host and returns the bare
// host alongside it. The host is what dataset filenames are keyed on.
func Domain(raw string) (normalized, host string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("url %q has no scheme or host", raw)
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), u.Host, nil
}

// NewProbeClient returns the HTTP client used for accessibility probes.
func NewProbeClient(timeout time.Duration) *resty.Client {
	return resty.New().SetTimeout(timeout)
}

// IsAccessibleHTML reports whether the URL answers a plain GET with a
// success status and an HTML content type. Sites failing this check are
// not worth pointing a browser at.
func IsAccessibleHTML(client *resty.Client, target string) bool {
	resp, err := client.R().Get(target)
	if err != nil {
		return false
	}
	if !resp.IsSuccess() {
		return false
	}
	contentType := strings.ToLower(resp.Header().Get("Content-Type"))
	return strings.Contains(contentType, "text/html")
}
