package ui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// stockImages stand in for items without a backdrop.
var stockImages = []string{
	"https://images.unsplash.com/photo-1577490621716-b1aa5f091524?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1551664723-61788d761795?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1485846234645-a62644f84728?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1478720568477-152d9b164e26?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1560169897-fc0cdbdfa4d5?crop=entropy&cs=srgb&fm=jpg&q=85",
	"https://images.unsplash.com/photo-1646861039459-fd9e3aabf3fb?crop=entropy&cs=srgb&fm=jpg&q=85",
}

// CardImage returns the backdrop of item or, without one, a stock image
// picked by item ID so the same card keeps its picture across renders.
func CardImage(item tmdb.MediaItem) string {
	if u := tmdb.ImageURL(item.BackdropPath, tmdb.SizeW500); u != "" {
		return u
	}
	return stockImages[pick(item.ID, len(stockImages))]
}

// PlayURL opens the player for item.
func PlayURL(item tmdb.MediaItem) string {
	return "/play?id=" + strconv.Itoa(item.ID)
}

// AddToListURL adds item to My List and comes back to returnTo.
func AddToListURL(item tmdb.MediaItem, returnTo string) string {
	return "/mylist/add?id=" + strconv.Itoa(item.ID) + "&return=" + url.QueryEscape(returnPath(returnTo))
}

// CardOptions configures RenderCard.
type CardOptions struct {
	Item        tmdb.MediaItem
	Large       bool
	CurrentPath string
}

// RenderCard renders a single poster card with its hover actions.
func RenderCard(opts CardOptions) string {
	item := opts.Item
	class := "card"
	if opts.Large {
		class += " card-large"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<article class="%s" style="background-image:url('%s')">`, class, EscapeAttr(ProxiedImage(CardImage(item))))
	b.WriteString(`<div class="card-shade"></div><div class="card-info">`)
	fmt.Fprintf(&b, `<h3 class="card-title">%s</h3>`, Escape(item.DisplayTitle()))
	b.WriteString(`<div class="card-actions">`)
	fmt.Fprintf(&b, `<a class="round round-light" href="%s" aria-label="Play">&#9654;</a>`, EscapeAttr(PlayURL(item)))
	fmt.Fprintf(&b, `<a class="round" href="%s" aria-label="Add to My List">+</a>`, EscapeAttr(AddToListURL(item, opts.CurrentPath)))
	b.WriteString(`<span class="round" aria-hidden="true">&#128077;</span>`)
	b.WriteString(`<span class="round" aria-hidden="true">&#9662;</span>`)
	b.WriteString(`</div></div></article>`)
	return b.String()
}

func pick(id, n int) int {
	return ((id % n) + n) % n
}
