package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

func item(id int, title string) tmdb.MediaItem {
	return tmdb.MediaItem{ID: id, Title: title}
}

func TestState_StartsHome(t *testing.T) {
	s := newState(time.Now())
	snap := s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Nil(t, snap.Selected)
	assert.False(t, snap.ShowSearch)
	assert.True(t, s.NeedsLoad())

	s.SetHome(catalog.Home{Featured: []tmdb.MediaItem{item(1, "A")}})
	assert.False(t, s.NeedsLoad())
}

func TestState_PlayAndClose(t *testing.T) {
	s := newState(time.Now())

	s.Play(item(3, "Pulp Fiction"))
	snap := s.Snapshot()
	assert.Equal(t, ViewPlayer, snap.View)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 3, snap.Selected.ID)

	s.ClosePlayer()
	snap = s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Nil(t, snap.Selected)
}

func TestState_SearchFlow(t *testing.T) {
	s := newState(time.Now())

	s.ToggleSearch(true)
	assert.True(t, s.Snapshot().ShowSearch)

	s.ShowResults("office", []tmdb.MediaItem{item(7, "The Office")})
	snap := s.Snapshot()
	assert.Equal(t, ViewSearch, snap.View)
	assert.Equal(t, "office", snap.Query)
	assert.Len(t, snap.SearchResults, 1)

	s.CloseSearch()
	snap = s.Snapshot()
	assert.Equal(t, ViewHome, snap.View)
	assert.Empty(t, snap.SearchResults)
	assert.Empty(t, snap.Query)
	assert.False(t, snap.ShowSearch)
}

func TestState_MyListUniqueByID(t *testing.T) {
	s := newState(time.Now())

	assert.True(t, s.AddToList(item(1, "A")))
	assert.True(t, s.AddToList(item(2, "B")))
	assert.False(t, s.AddToList(item(1, "A again")))

	list := s.Snapshot().MyList
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, "B", list[1].Title)
}

func TestState_Lookup(t *testing.T) {
	s := newState(time.Now())
	s.SetHome(catalog.Home{
		Featured: []tmdb.MediaItem{item(1, "Featured")},
		Sections: []catalog.Section{{ID: catalog.SectionHorror, Items: []tmdb.MediaItem{item(2, "Row")}}},
	})
	s.ShowResults("q", []tmdb.MediaItem{item(3, "Result")})
	s.AddToList(item(4, "Listed"))

	for id, want := range map[int]string{1: "Featured", 2: "Row", 3: "Result", 4: "Listed"} {
		got, ok := s.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, want, got.Title)
	}
	_, ok := s.Lookup(99)
	assert.False(t, ok)
}

func TestState_SnapshotIsACopy(t *testing.T) {
	s := newState(time.Now())
	s.AddToList(item(1, "A"))
	s.Play(item(1, "A"))

	snap := s.Snapshot()
	snap.MyList[0].Title = "mutated"
	snap.Selected.Title = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "A", again.MyList[0].Title)
	assert.Equal(t, "A", again.Selected.Title)
}
