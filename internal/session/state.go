package session

import (
	"sync"
	"time"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// View is the screen currently shown to a browser session.
type View string

const (
	ViewHome   View = "home"
	ViewSearch View = "search"
	ViewPlayer View = "player"
)

// State is the per-session view-state container: which screen is visible,
// the selected item, the search overlay and the curated list.
type State struct {
	mu sync.Mutex

	view       View
	selected   *tmdb.MediaItem
	showSearch bool
	query      string
	results    []tmdb.MediaItem
	myList     []tmdb.MediaItem
	home       catalog.Home
	loaded     bool
	lastSeen   time.Time
}

// Snapshot is an immutable copy of State used for rendering.
type Snapshot struct {
	View          View
	Selected      *tmdb.MediaItem
	ShowSearch    bool
	Query         string
	SearchResults []tmdb.MediaItem
	MyList        []tmdb.MediaItem
	Home          catalog.Home
}

func newState(now time.Time) *State {
	return &State{view: ViewHome, lastSeen: now}
}

// NeedsLoad reports whether home content has not been fetched yet.
func (s *State) NeedsLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}

// SetHome replaces the fetched content lists.
func (s *State) SetHome(home catalog.Home) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = home
	s.loaded = true
}

// ToggleSearch shows or hides the search field in the navbar.
func (s *State) ToggleSearch(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showSearch = show
}

// ShowResults stores a finished search and switches to the search overlay.
func (s *State) ShowResults(query string, results []tmdb.MediaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.results = append([]tmdb.MediaItem(nil), results...)
	s.showSearch = true
	s.view = ViewSearch
}

// CloseSearch returns home and forgets the results.
func (s *State) CloseSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewHome
	s.results = nil
	s.query = ""
	s.showSearch = false
}

// Play selects item and opens the player.
func (s *State) Play(item tmdb.MediaItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
	s.view = ViewPlayer
}

// ClosePlayer clears the selection and returns home.
func (s *State) ClosePlayer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.view = ViewHome
}

// AddToList appends item to the curated list unless an item with the same
// ID is already there. It reports whether the list changed.
func (s *State) AddToList(item tmdb.MediaItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.myList {
		if existing.ID == item.ID {
			return false
		}
	}
	s.myList = append(s.myList, item)
	return true
}

// Lookup finds an item by ID among everything this session has been shown.
func (s *State) Lookup(id int) (tmdb.MediaItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil && s.selected.ID == id {
		return *s.selected, true
	}
	lists := [][]tmdb.MediaItem{s.results, s.myList, s.home.Featured}
	for _, section := range s.home.Sections {
		lists = append(lists, section.Items)
	}
	for _, list := range lists {
		for _, item := range list {
			if item.ID == id {
				return item, true
			}
		}
	}
	return tmdb.MediaItem{}, false
}

// Snapshot copies the state for rendering outside the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.view
	var selected *tmdb.MediaItem
	if s.selected != nil {
		item := *s.selected
		selected = &item
	}
	if view == ViewPlayer && selected == nil {
		view = ViewHome
	}
	return Snapshot{
		View:          view,
		Selected:      selected,
		ShowSearch:    s.showSearch,
		Query:         s.query,
		SearchResults: append([]tmdb.MediaItem(nil), s.results...),
		MyList:        append([]tmdb.MediaItem(nil), s.myList...),
		Home:          s.home,
	}
}

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *State) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
