package mylist

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

type fixedSession struct{ state *session.State }

func (f fixedSession) FromRequest(http.ResponseWriter, *http.Request) *session.State {
	return f.state
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAddHandler(t *testing.T) {
	_, state := session.NewStore(time.Hour, nil, nil).Create()
	state.SetHome(catalog.Home{Featured: []tmdb.MediaItem{{ID: 5, Name: "Breaking Bad"}, {ID: 7, Name: "The Office"}}})
	h := AddHandler(fixedSession{state: state}, nil)

	rec := get(h, "/mylist/add?id=5&return=%2F%3Freload%3D0")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?reload=0", rec.Header().Get("Location"))

	get(h, "/mylist/add?id=7")
	get(h, "/mylist/add?id=5")

	list := state.Snapshot().MyList
	if assert.Len(t, list, 2) {
		assert.Equal(t, 5, list[0].ID)
		assert.Equal(t, 7, list[1].ID)
	}
}

func TestAddHandler_Rejects(t *testing.T) {
	_, state := session.NewStore(time.Hour, nil, nil).Create()
	h := AddHandler(fixedSession{state: state}, nil)

	assert.Equal(t, http.StatusBadRequest, get(h, "/mylist/add").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/mylist/add?id=1").Code)

	rec := get(h, "/mylist/add?id=x&return=//evil.example")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, state.Snapshot().MyList)
}

func TestAddHandler_StaysOnSite(t *testing.T) {
	_, state := session.NewStore(time.Hour, nil, nil).Create()
	state.SetHome(catalog.Home{Featured: []tmdb.MediaItem{{ID: 5, Name: "Breaking Bad"}}})
	h := AddHandler(fixedSession{state: state}, nil)

	for _, target := range []string{"%2F%5Cevil.example", "%2F%2Fevil.example", "https%3A%2F%2Fevil.example"} {
		rec := get(h, "/mylist/add?id=5&return="+target)
		assert.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, "/", rec.Header().Get("Location"), target)
	}
}
