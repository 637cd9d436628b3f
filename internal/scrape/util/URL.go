package util

import (
	"net/url"
	"strings"
)

// ResolveHref joins a possibly-relative href against the page it came from.
// Absolute hrefs pass through unchanged; empty or unparseable input yields "".
// No network access happens here.
func ResolveHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	h, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(h).String()
}
