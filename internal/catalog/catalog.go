package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/JoeSaf/homeStream/internal/platform/cache"
	"github.com/JoeSaf/homeStream/internal/platform/metrics"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

const (
	featuredCount  = 5
	maxSuggestions = 8
	suggestTTL     = 5 * time.Minute
)

// Source is the slice of the TMDB client the catalogue reads from.
type Source interface {
	Trending(ctx context.Context, mediaType, window string) (*tmdb.Page, error)
	Popular(ctx context.Context, kind tmdb.Kind) (*tmdb.Page, error)
	TopRated(ctx context.Context, kind tmdb.Kind) (*tmdb.Page, error)
	Upcoming(ctx context.Context) (*tmdb.Page, error)
	NowPlaying(ctx context.Context) (*tmdb.Page, error)
	DiscoverGenre(ctx context.Context, genreID int) (*tmdb.Page, error)
	SearchMulti(ctx context.Context, query string) (*tmdb.Page, error)
}

// SectionID names one content row of the home screen.
type SectionID string

const (
	SectionTrending      SectionID = "trending"
	SectionPopularMovies SectionID = "popular_movies"
	SectionPopularTV     SectionID = "popular_tv"
	SectionTopRated      SectionID = "top_rated"
	SectionNowPlaying    SectionID = "now_playing"
	SectionUpcoming      SectionID = "upcoming"
	SectionAction        SectionID = "action"
	SectionComedy        SectionID = "comedy"
	SectionHorror        SectionID = "horror"
)

// Section is a titled content row.
type Section struct {
	ID       SectionID        `json:"id"`
	Title    string           `json:"title"`
	Large    bool             `json:"large"`
	Fallback bool             `json:"fallback"`
	Items    []tmdb.MediaItem `json:"items"`
}

// Home is everything the landing screen shows.
type Home struct {
	Featured []tmdb.MediaItem `json:"featured"`
	Sections []Section        `json:"sections"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// Section returns the row with id.
func (h Home) Section(id SectionID) (Section, bool) {
	for _, s := range h.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

type sectionSpec struct {
	id    SectionID
	title string
	large bool
	fetch func(ctx context.Context, src Source) (*tmdb.Page, error)
}

// rows lists the home screen sections in display order.
var rows = []sectionSpec{
	{SectionTrending, "Trending Now", true, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.Trending(ctx, "all", "week")
	}},
	{SectionPopularMovies, "Popular Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.Popular(ctx, tmdb.KindMovie)
	}},
	{SectionPopularTV, "Popular TV Shows", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.Popular(ctx, tmdb.KindTV)
	}},
	{SectionTopRated, "Top Rated Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.TopRated(ctx, tmdb.KindMovie)
	}},
	{SectionNowPlaying, "Now Playing", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.NowPlaying(ctx)
	}},
	{SectionUpcoming, "Upcoming Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.Upcoming(ctx)
	}},
	{SectionAction, "Action Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.DiscoverGenre(ctx, tmdb.GenreAction)
	}},
	{SectionComedy, "Comedy Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.DiscoverGenre(ctx, tmdb.GenreComedy)
	}},
	{SectionHorror, "Horror Movies", false, func(ctx context.Context, src Source) (*tmdb.Page, error) {
		return src.DiscoverGenre(ctx, tmdb.GenreHorror)
	}},
}

// Service loads home screen content and runs searches, masking every
// upstream failure with placeholder content.
type Service struct {
	src      Source
	log      *zap.Logger
	metrics  *metrics.Registry
	suggests *cache.Cache[[]string]
	now      func() time.Time
}

// New creates a catalogue service reading from src.
func New(src Source, log *zap.Logger, m *metrics.Registry) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		src:      src,
		log:      log,
		metrics:  m,
		suggests: cache.New[[]string](suggestTTL),
		now:      time.Now,
	}
}

// LoadHome fetches every section in parallel. A section whose request fails
// or comes back empty is filled with the placeholder set on its own.
func (s *Service) LoadHome(ctx context.Context) Home {
	sections := make([]Section, len(rows))

	var wg sync.WaitGroup
	for i, spec := range rows {
		wg.Add(1)
		go func(i int, spec sectionSpec) {
			defer wg.Done()
			sections[i] = s.loadSection(ctx, spec)
		}(i, spec)
	}
	wg.Wait()

	featured := sections[0].Items
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}

	return Home{
		Featured: append([]tmdb.MediaItem(nil), featured...),
		Sections: sections,
		LoadedAt: s.now(),
	}
}

func (s *Service) loadSection(ctx context.Context, spec sectionSpec) Section {
	section := Section{ID: spec.id, Title: spec.title, Large: spec.large}

	page, err := spec.fetch(ctx, s.src)
	switch {
	case err != nil:
		s.log.Warn("section unavailable, using placeholder content",
			zap.String("section", string(spec.id)), zap.Error(err))
	case page == nil || len(page.Results) == 0:
		s.log.Warn("section came back empty, using placeholder content",
			zap.String("section", string(spec.id)))
	default:
		section.Items = page.Results
		return section
	}

	s.metrics.Fallback(string(spec.id))
	section.Items = Placeholder()
	section.Fallback = true
	return section
}

// Search runs a multi search. When the API is unreachable the placeholder
// items whose title contains query are returned instead.
func (s *Service) Search(ctx context.Context, query string) []tmdb.MediaItem {
	results, _ := s.search(ctx, query)
	return results
}

// search reports whether the results came from the placeholder set.
func (s *Service) search(ctx context.Context, query string) ([]tmdb.MediaItem, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []tmdb.MediaItem{}, false
	}

	page, err := s.src.SearchMulti(ctx, query)
	if err != nil {
		s.log.Warn("search failed, filtering placeholder content",
			zap.String("query", query), zap.Error(err))
		s.metrics.Fallback("search")
		return FilterPlaceholder(query), true
	}
	if page == nil || page.Results == nil {
		return []tmdb.MediaItem{}, false
	}
	return page.Results, false
}

// Suggest returns up to eight distinct titles for typeahead.
func (s *Service) Suggest(ctx context.Context, query string) []string {
	key := cases.Fold().String(strings.TrimSpace(query))
	if len([]rune(key)) < 2 {
		return []string{}
	}
	if cached, ok := s.suggests.Get(key); ok {
		return cached
	}

	results, fellBack := s.search(ctx, query)
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{})
	for _, item := range results {
		title := item.DisplayTitle()
		if title == "" {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
		if len(out) == maxSuggestions {
			break
		}
	}
	// Placeholder titles are only good until the API answers again.
	if !fellBack {
		s.suggests.Set(key, out)
	}
	return out
}

// FilterPlaceholder returns placeholder items whose title contains query,
// ignoring case.
func FilterPlaceholder(query string) []tmdb.MediaItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	out := make([]tmdb.MediaItem, 0)
	for _, item := range Placeholder() {
		if strings.Contains(fold.String(item.DisplayTitle()), needle) {
			out = append(out, item)
		}
	}
	return out
}
