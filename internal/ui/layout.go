package ui

import (
	"fmt"
	"net/url"
	"strings"
)

// NavbarOptions controls the fixed top bar.
type NavbarOptions struct {
	ShowSearch  bool
	Query       string
	CurrentPath string
}

// RenderNavbar renders the brand, static section links, the search toggle
// and the profile icons.
func RenderNavbar(opts NavbarOptions) string {
	returnTo := url.QueryEscape(returnPath(opts.CurrentPath))

	var b strings.Builder
	b.WriteString(`<nav id="navbar" class="nav">`)
	b.WriteString(`<div class="nav-left">`)
	fmt.Fprintf(&b, `<a class="nav-brand" href="/">%s</a>`, brand)
	b.WriteString(`<div class="nav-links">`)
	for _, label := range []string{"Home", "TV Shows", "Movies", "New &amp; Popular", "My List"} {
		fmt.Fprintf(&b, `<a href="/">%s</a>`, label)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="nav-right">`)
	if opts.ShowSearch {
		b.WriteString(`<form class="nav-search" action="/search" method="get">`)
		fmt.Fprintf(&b, `<input id="search-input" type="text" name="q" value="%s" placeholder="Search movies, shows..." list="suggestions" autocomplete="off" autofocus>`, EscapeAttr(opts.Query))
		fmt.Fprintf(&b, `<a class="nav-icon" href="/search/close-bar?return=%s" aria-label="Close search">&#10005;</a>`, returnTo)
		b.WriteString(`</form>`)
	} else {
		fmt.Fprintf(&b, `<a class="nav-icon" href="/search/open?return=%s" aria-label="Search">&#128269;</a>`, returnTo)
	}
	b.WriteString(`<span class="nav-icon" aria-hidden="true">&#128276;</span>`)
	b.WriteString(`<span class="nav-icon nav-profile" aria-hidden="true">&#128100; &#9662;</span>`)
	b.WriteString(`</div></nav>`)
	return b.String()
}

func returnPath(p string) string {
	if strings.TrimSpace(p) == "" {
		return "/"
	}
	return p
}
