package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeSaf/homeStream/internal/tmdb"
)

var errDown = errors.New("upstream down")

// fakeSource serves page for every endpoint unless the endpoint is listed
// in fail or empty.
type fakeSource struct {
	mu     sync.Mutex
	page   *tmdb.Page
	fail   map[string]bool
	empty  map[string]bool
	calls  []string
	search *tmdb.Page
}

func (f *fakeSource) answer(endpoint string) (*tmdb.Page, error) {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	f.mu.Unlock()
	if f.fail[endpoint] || f.fail["*"] {
		return nil, errDown
	}
	if f.empty[endpoint] {
		return &tmdb.Page{Results: []tmdb.MediaItem{}}, nil
	}
	return f.page, nil
}

func (f *fakeSource) Trending(_ context.Context, mediaType, window string) (*tmdb.Page, error) {
	return f.answer("trending/" + mediaType + "/" + window)
}

func (f *fakeSource) Popular(_ context.Context, kind tmdb.Kind) (*tmdb.Page, error) {
	return f.answer("popular/" + string(kind))
}

func (f *fakeSource) TopRated(_ context.Context, kind tmdb.Kind) (*tmdb.Page, error) {
	return f.answer("top_rated/" + string(kind))
}

func (f *fakeSource) Upcoming(context.Context) (*tmdb.Page, error) {
	return f.answer("upcoming")
}

func (f *fakeSource) NowPlaying(context.Context) (*tmdb.Page, error) {
	return f.answer("now_playing")
}

func (f *fakeSource) DiscoverGenre(_ context.Context, genreID int) (*tmdb.Page, error) {
	switch genreID {
	case tmdb.GenreAction:
		return f.answer("genre/action")
	case tmdb.GenreComedy:
		return f.answer("genre/comedy")
	default:
		return f.answer("genre/horror")
	}
}

func (f *fakeSource) SearchMulti(_ context.Context, query string) (*tmdb.Page, error) {
	if _, err := f.answer("search"); err != nil {
		return nil, err
	}
	return f.search, nil
}

func livePage(n int) *tmdb.Page {
	page := &tmdb.Page{Page: 1}
	for i := 0; i < n; i++ {
		page.Results = append(page.Results, tmdb.MediaItem{ID: 100 + i, Title: "Live"})
	}
	return page
}

func TestLoadHome_AllLive(t *testing.T) {
	src := &fakeSource{page: livePage(7)}
	home := New(src, nil, nil).LoadHome(context.Background())

	require.Len(t, home.Sections, 9)
	assert.Len(t, src.calls, 9)
	assert.Len(t, home.Featured, 5)
	assert.Equal(t, 100, home.Featured[0].ID)

	titles := make([]string, 0, len(home.Sections))
	for _, s := range home.Sections {
		titles = append(titles, s.Title)
		assert.False(t, s.Fallback, s.Title)
		assert.Len(t, s.Items, 7)
	}
	assert.Equal(t, []string{
		"Trending Now", "Popular Movies", "Popular TV Shows", "Top Rated Movies",
		"Now Playing", "Upcoming Movies", "Action Movies", "Comedy Movies", "Horror Movies",
	}, titles)
	assert.True(t, home.Sections[0].Large)
	assert.False(t, home.Sections[1].Large)
}

func TestLoadHome_AllFailuresFallBackToPlaceholder(t *testing.T) {
	src := &fakeSource{fail: map[string]bool{"*": true}}
	home := New(src, nil, nil).LoadHome(context.Background())

	want := Placeholder()
	for _, s := range home.Sections {
		assert.True(t, s.Fallback, s.Title)
		assert.Equal(t, want, s.Items, s.Title)
	}
	assert.Equal(t, want[:5], home.Featured)
}

func TestLoadHome_SectionsFailIndependently(t *testing.T) {
	src := &fakeSource{
		page:  livePage(3),
		fail:  map[string]bool{"genre/comedy": true},
		empty: map[string]bool{"upcoming": true},
	}
	home := New(src, nil, nil).LoadHome(context.Background())

	comedy, ok := home.Section(SectionComedy)
	require.True(t, ok)
	assert.True(t, comedy.Fallback)
	assert.Len(t, comedy.Items, 8)

	upcoming, ok := home.Section(SectionUpcoming)
	require.True(t, ok)
	assert.True(t, upcoming.Fallback)

	horror, ok := home.Section(SectionHorror)
	require.True(t, ok)
	assert.False(t, horror.Fallback)
	assert.Len(t, horror.Items, 3)

	// fewer than five trending items are featured as they are
	assert.Len(t, home.Featured, 3)
}

func TestSearch_Live(t *testing.T) {
	src := &fakeSource{search: &tmdb.Page{Results: []tmdb.MediaItem{{ID: 9, Name: "Dark"}}}}
	results := New(src, nil, nil).Search(context.Background(), "  dark ")
	require.Len(t, results, 1)
	assert.Equal(t, 9, results[0].ID)
}

func TestSearch_EmptyLiveResultStaysEmpty(t *testing.T) {
	src := &fakeSource{search: &tmdb.Page{}}
	results := New(src, nil, nil).Search(context.Background(), "godfather")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_FailureFiltersPlaceholder(t *testing.T) {
	src := &fakeSource{fail: map[string]bool{"search": true}}
	results := New(src, nil, nil).Search(context.Background(), "THE")

	got := make([]string, 0, len(results))
	for _, r := range results {
		got = append(got, r.DisplayTitle())
	}
	assert.Equal(t, []string{"The Dark Knight", "The Godfather", "The Office"}, got)
}

func TestSearch_BlankQuery(t *testing.T) {
	src := &fakeSource{}
	assert.Empty(t, New(src, nil, nil).Search(context.Background(), "   "))
	assert.Empty(t, src.calls)
}

func TestSuggest_DedupesAndCaches(t *testing.T) {
	src := &fakeSource{search: &tmdb.Page{Results: []tmdb.MediaItem{
		{ID: 1, Title: "Heat"}, {ID: 2, Title: "Heat"}, {ID: 3, Name: "Heated Rivalry"}, {ID: 4},
	}}}
	svc := New(src, nil, nil)

	assert.Equal(t, []string{"Heat", "Heated Rivalry"}, svc.Suggest(context.Background(), "hea"))
	assert.Equal(t, []string{"Heat", "Heated Rivalry"}, svc.Suggest(context.Background(), "HEA"))
	assert.Len(t, src.calls, 1)

	assert.Empty(t, svc.Suggest(context.Background(), "h"))
}

func TestSuggest_FallbackIsNotCached(t *testing.T) {
	src := &fakeSource{
		fail:   map[string]bool{"search": true},
		search: &tmdb.Page{Results: []tmdb.MediaItem{{ID: 10, Title: "The Thing"}}},
	}
	svc := New(src, nil, nil)

	assert.Equal(t, []string{"The Dark Knight", "The Godfather", "The Office"}, svc.Suggest(context.Background(), "the"))

	src.mu.Lock()
	src.fail = nil
	src.mu.Unlock()

	assert.Equal(t, []string{"The Thing"}, svc.Suggest(context.Background(), "the"))
	assert.Equal(t, []string{"The Thing"}, svc.Suggest(context.Background(), "the"))
	assert.Len(t, src.calls, 2)
}

func TestPlaceholder_ReturnsCopies(t *testing.T) {
	a := Placeholder()
	a[0].Title = "changed"
	a[0].GenreIDs[0] = -1

	b := Placeholder()
	assert.Equal(t, "The Dark Knight", b[0].Title)
	assert.Equal(t, 28, b[0].GenreIDs[0])
	assert.Len(t, b, 8)
}
