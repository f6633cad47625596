package ui

import (
	"strings"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// MyListTitle is the row title of the curated list.
const MyListTitle = "My List"

// HomePageData is what the landing screen renders.
type HomePageData struct {
	ShowSearch  bool
	Query       string
	CurrentPath string
	Featured    []tmdb.MediaItem
	Sections    []catalog.Section
	MyList      []tmdb.MediaItem
}

// RenderHomePage renders the navbar, the hero banner and every content row,
// followed by My List when it has entries.
func RenderHomePage(data HomePageData) string {
	var b strings.Builder
	writeHead(&b, brand)

	b.WriteString(RenderNavbar(NavbarOptions{ShowSearch: data.ShowSearch, Query: data.Query, CurrentPath: data.CurrentPath}))
	b.WriteString(`<main class="page">`)
	b.WriteString(RenderHero(data.Featured, data.CurrentPath))
	b.WriteString(`<div class="rows">`)
	for _, s := range data.Sections {
		b.WriteString(RenderRow(RowOptions{
			Title:       s.Title,
			Items:       s.Items,
			Large:       s.Large,
			CurrentPath: data.CurrentPath,
		}))
	}
	if len(data.MyList) > 0 {
		b.WriteString(RenderRow(RowOptions{Title: MyListTitle, Items: data.MyList, CurrentPath: data.CurrentPath}))
	}
	b.WriteString(`</div></main>`)

	AppendNavbarScript(&b)
	AppendHeroScript(&b)
	AppendRowScript(&b)
	if data.ShowSearch {
		AppendSuggestionScript(&b, "search-input")
	}
	writeFoot(&b)
	return b.String()
}
