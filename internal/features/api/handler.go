package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// Sessions resolves the view state of the calling browser.
type Sessions interface {
	FromRequest(w http.ResponseWriter, r *http.Request) *session.State
}

// Catalog is what the JSON endpoints read from.
type Catalog interface {
	LoadHome(ctx context.Context) catalog.Home
	Search(ctx context.Context, query string) []tmdb.MediaItem
}

type homeResponse struct {
	catalog.Home
	MyList []tmdb.MediaItem `json:"my_list"`
}

type searchResponse struct {
	Query   string           `json:"query"`
	Results []tmdb.MediaItem `json:"results"`
}

// HomeHandler returns the session's home content as JSON.
func HomeHandler(sessions Sessions, cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sessions.FromRequest(w, r)
		if state.NeedsLoad() {
			home := cat.LoadHome(r.Context())
			if r.Context().Err() != nil {
				return
			}
			state.SetHome(home)
		}
		snap := state.Snapshot()
		myList := snap.MyList
		if myList == nil {
			myList = []tmdb.MediaItem{}
		}
		writeJSON(w, homeResponse{Home: snap.Home, MyList: myList})
	}
}

// SearchHandler returns search results as JSON without touching the
// session's view.
func SearchHandler(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Error(w, "usage: /api/search?q=<query>", http.StatusBadRequest)
			return
		}
		results := cat.Search(r.Context(), query)
		if results == nil {
			results = []tmdb.MediaItem{}
		}
		writeJSON(w, searchResponse{Query: query, Results: results})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
