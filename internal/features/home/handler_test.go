package home

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

type fixedSession struct{ state *session.State }

func (f fixedSession) FromRequest(http.ResponseWriter, *http.Request) *session.State {
	return f.state
}

type countingLoader struct{ calls int }

func (l *countingLoader) LoadHome(context.Context) catalog.Home {
	l.calls++
	items := []tmdb.MediaItem{{ID: 1, Title: "Dune"}, {ID: 2, Title: "Heat"}}
	return catalog.Home{
		Featured: items,
		Sections: []catalog.Section{{ID: catalog.SectionTrending, Title: "Trending Now", Large: true, Items: items}},
	}
}

func newFixture() (fixedSession, *countingLoader, http.HandlerFunc) {
	_, state := session.NewStore(time.Hour, nil, nil).Create()
	sessions := fixedSession{state: state}
	loader := &countingLoader{}
	return sessions, loader, Handler(sessions, loader, nil)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_LoadsOncePerSession(t *testing.T) {
	_, loader, h := newFixture()

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="row-Trending-Now"`)
	assert.Contains(t, rec.Body.String(), `id="hero"`)
	assert.Equal(t, 1, loader.calls)

	get(h, "/")
	assert.Equal(t, 1, loader.calls)

	rec = get(h, "/?reload=1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 2, loader.calls)
}

func TestHandler_RendersPlayer(t *testing.T) {
	sessions, _, h := newFixture()
	sessions.state.Play(tmdb.MediaItem{ID: 6, Title: "Stranger Things"})

	body := get(h, "/").Body.String()
	assert.Contains(t, body, "mute=1")
	assert.Contains(t, body, "Stranger Things")

	body = get(h, "/?muted=0").Body.String()
	assert.Contains(t, body, "mute=0")
}

func TestHandler_RendersSearch(t *testing.T) {
	sessions, _, h := newFixture()
	sessions.state.ShowResults("heat", []tmdb.MediaItem{{ID: 2, Title: "Heat"}})

	body := get(h, "/").Body.String()
	assert.Contains(t, body, "Search Results")
	assert.Contains(t, body, "Heat")
}

func TestHandler_UnknownPath(t *testing.T) {
	_, _, h := newFixture()
	assert.Equal(t, http.StatusNotFound, get(h, "/nope").Code)
}

// liveOrPlaceholder mimics the catalogue: a dead context makes every
// section fall back.
type liveOrPlaceholder struct{ calls int }

func (l *liveOrPlaceholder) LoadHome(ctx context.Context) catalog.Home {
	l.calls++
	items := []tmdb.MediaItem{{ID: 10, Title: "Heat"}}
	if ctx.Err() != nil {
		items = catalog.Placeholder()
	}
	return catalog.Home{Featured: items, Sections: []catalog.Section{{ID: catalog.SectionTrending, Title: "Trending Now", Items: items}}}
}

func TestHandler_AbortedFirstLoadIsRetried(t *testing.T) {
	_, state := session.NewStore(time.Hour, nil, nil).Create()
	loader := &liveOrPlaceholder{}
	h := Handler(fixedSession{state: state}, loader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	assert.True(t, state.NeedsLoad())

	body := get(h, "/").Body.String()
	assert.Equal(t, 2, loader.calls)
	assert.Contains(t, body, "Heat")
	assert.NotContains(t, body, "The Dark Knight")
}
