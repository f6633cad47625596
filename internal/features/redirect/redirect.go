package redirect

import (
	"net/http"
	"net/url"
	"strings"
)

// Target returns the request's return= parameter when it names a path on
// this site, and "/" otherwise.
func Target(r *http.Request) string {
	return Local(r.URL.Query().Get("return"))
}

// Local accepts only same-origin paths. Browsers read a backslash as a
// slash, so "/\host" counts as the protocol-relative "//host".
func Local(raw string) string {
	target := strings.ReplaceAll(raw, `\`, "/")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return target
}
