package ui

import (
	"fmt"
	"strings"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// SearchPageData is what the search overlay renders.
type SearchPageData struct {
	Query       string
	CurrentPath string
	Results     []tmdb.MediaItem
}

// RenderSearchPage renders the full-screen search overlay with a grid of
// result cards.
func RenderSearchPage(data SearchPageData) string {
	var b strings.Builder
	writeHead(&b, "Search: "+data.Query+" - "+brand)

	b.WriteString(RenderNavbar(NavbarOptions{ShowSearch: true, Query: data.Query, CurrentPath: data.CurrentPath}))
	b.WriteString(`<main class="overlay">`)
	b.WriteString(`<div class="overlay-head"><h2>Search Results</h2>`)
	b.WriteString(`<a class="round" href="/search/close" aria-label="Close search">&#10005;</a></div>`)
	if q := strings.TrimSpace(data.Query); q != "" {
		fmt.Fprintf(&b, `<p class="overlay-query">Results for &quot;%s&quot;</p>`, Escape(q))
	}
	if len(data.Results) == 0 {
		b.WriteString(`<p class="empty">No matches found.</p>`)
	} else {
		b.WriteString(`<div class="grid">`)
		for _, item := range data.Results {
			b.WriteString(RenderCard(CardOptions{Item: item, CurrentPath: data.CurrentPath}))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</main>`)

	AppendNavbarScript(&b)
	AppendSuggestionScript(&b, "search-input")
	writeFoot(&b)
	return b.String()
}
