package ui

import (
	"fmt"
	"strings"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// HeroInterval is the auto-advance period of the banner, in milliseconds.
const HeroInterval = 8000

const heroStock = "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?crop=entropy&cs=srgb&fm=jpg&q=85"

// HeroImage returns the wide artwork for a featured item.
func HeroImage(item tmdb.MediaItem) string {
	if u := tmdb.ImageURL(item.BackdropPath, tmdb.SizeW1280); u != "" {
		return u
	}
	return heroStock
}

// RenderHero renders the featured banner. Nothing is rendered without
// featured items.
func RenderHero(featured []tmdb.MediaItem, currentPath string) string {
	if len(featured) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="hero" id="hero" data-interval="%d">`, HeroInterval)
	for i, item := range featured {
		class := "hero-slide"
		if i == 0 {
			class += " active"
		}
		fmt.Fprintf(&b, `<div class="%s" data-index="%d" style="background-image:url('%s')">`, class, i, EscapeAttr(ProxiedImage(HeroImage(item))))
		b.WriteString(`<div class="hero-shade"></div><div class="hero-body">`)
		fmt.Fprintf(&b, `<h1 class="hero-title">%s</h1>`, Escape(item.DisplayTitle()))
		if item.Overview != "" {
			fmt.Fprintf(&b, `<p class="hero-overview">%s</p>`, Escape(item.Overview))
		}
		b.WriteString(`<div class="hero-actions">`)
		fmt.Fprintf(&b, `<a class="btn btn-play" href="%s">&#9654; Play</a>`, EscapeAttr(PlayURL(item)))
		fmt.Fprintf(&b, `<a class="btn btn-list" href="%s">+ My List</a>`, EscapeAttr(AddToListURL(item, currentPath)))
		b.WriteString(`</div></div></div>`)
	}
	if len(featured) > 1 {
		b.WriteString(`<div class="hero-dots">`)
		for i := range featured {
			class := "hero-dot"
			if i == 0 {
				class += " active"
			}
			fmt.Fprintf(&b, `<button class="%s" data-index="%d" aria-label="Slide %d"></button>`, class, i, i+1)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}
