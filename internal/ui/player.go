package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// demoVideos are public trailers standing in for the selected title.
var demoVideos = []string{
	"dQw4w9WgXcQ",
	"L_jWHffIx5E",
	"ZbZSe6N_BXs",
	"kffacxfA7G4",
	"60ItHr2R7ZY",
}

// ControlsTimeout is how long player controls stay visible without mouse
// movement, in milliseconds.
const ControlsTimeout = 3000

// DemoVideoID picks the embedded video for item.
func DemoVideoID(item tmdb.MediaItem) string {
	return demoVideos[pick(item.ID, len(demoVideos))]
}

// EmbedURL builds the autoplaying, chrome-less embed URL.
func EmbedURL(videoID string, muted bool) string {
	mute := "0"
	if muted {
		mute = "1"
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(videoID) +
		"?autoplay=1&mute=" + mute + "&controls=0&rel=0"
}

// PlayerPageData is what the mock playback view renders.
type PlayerPageData struct {
	Item  tmdb.MediaItem
	Muted bool
}

// RenderPlayerPage renders the full-screen player.
func RenderPlayerPage(data PlayerPageData) string {
	item := data.Item
	var b strings.Builder
	writeHead(&b, item.DisplayTitle()+" - "+brand)

	b.WriteString(`<main class="player" id="player">`)
	fmt.Fprintf(&b, `<iframe class="player-frame" src="%s" title="%s" allow="autoplay; encrypted-media" allowfullscreen></iframe>`,
		EscapeAttr(EmbedURL(DemoVideoID(item), data.Muted)), EscapeAttr(item.DisplayTitle()))

	b.WriteString(`<div class="player-controls" id="player-controls">`)
	b.WriteString(`<div class="player-top">`)
	b.WriteString(`<a class="round" href="/player/close" aria-label="Close player">&#10005;</a>`)
	fmt.Fprintf(&b, `<h1 class="player-title">%s</h1>`, Escape(item.DisplayTitle()))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="player-bottom">`)
	b.WriteString(`<div class="progress"><div class="progress-fill"></div></div>`)
	b.WriteString(`<div class="player-row">`)
	b.WriteString(`<span class="round round-light" aria-hidden="true">&#10074;&#10074;</span>`)
	if data.Muted {
		b.WriteString(`<a class="round" href="/?muted=0" aria-label="Unmute">&#128263;</a>`)
	} else {
		b.WriteString(`<a class="round" href="/?muted=1" aria-label="Mute">&#128266;</a>`)
	}
	b.WriteString(`<span class="player-time">1:23 / 4:56</span>`)
	b.WriteString(`</div></div></div></main>`)

	AppendPlayerScript(&b)
	writeFoot(&b)
	return b.String()
}
