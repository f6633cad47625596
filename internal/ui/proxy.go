package ui

import (
	"net/url"
	"strings"
)

// ProxiedImage routes remote artwork through the local image proxy.
// Local paths are returned untouched.
func ProxiedImage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return "/proxy?url=" + url.QueryEscape(raw)
	}
	return raw
}
