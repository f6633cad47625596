package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// ScrollStep is how far one arrow click moves a row, in pixels.
const ScrollStep = 960

var whitespace = regexp.MustCompile(`\s+`)

// RowID derives the DOM id of a row from its title.
func RowID(title string) string {
	return "row-" + whitespace.ReplaceAllString(title, "-")
}

// RowOptions configures RenderRow.
type RowOptions struct {
	Title       string
	Items       []tmdb.MediaItem
	Large       bool
	CurrentPath string
}

// RenderRow renders a titled, horizontally scrollable strip of cards.
func RenderRow(opts RowOptions) string {
	if len(opts.Items) == 0 {
		return ""
	}
	id := RowID(opts.Title)

	var b strings.Builder
	b.WriteString(`<section class="row">`)
	fmt.Fprintf(&b, `<h2 class="row-title">%s</h2>`, Escape(opts.Title))
	b.WriteString(`<div class="row-frame">`)
	fmt.Fprintf(&b, `<button class="row-arrow row-left" data-row="%s" data-step="-%d" hidden>&#10094;</button>`, EscapeAttr(id), ScrollStep)
	fmt.Fprintf(&b, `<div class="row-track" id="%s">`, EscapeAttr(id))
	for _, item := range opts.Items {
		b.WriteString(RenderCard(CardOptions{Item: item, Large: opts.Large, CurrentPath: opts.CurrentPath}))
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<button class="row-arrow row-right" data-row="%s" data-step="%d">&#10095;</button>`, EscapeAttr(id), ScrollStep)
	b.WriteString(`</div></section>`)
	return b.String()
}
