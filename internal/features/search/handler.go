package search

import (
	"context"
	"net/http"
	"strings"

	"github.com/JoeSaf/homeStream/internal/features/redirect"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

// Sessions resolves the view state of the calling browser.
type Sessions interface {
	FromRequest(w http.ResponseWriter, r *http.Request) *session.State
}

// Searcher runs a title search.
type Searcher interface {
	Search(ctx context.Context, query string) []tmdb.MediaItem
}

// Handler searches for q and switches the session to the results overlay.
// A blank query just goes home.
func Handler(sessions Sessions, searcher Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		state := sessions.FromRequest(w, r)
		state.ShowResults(query, searcher.Search(r.Context(), query))
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// CloseHandler leaves the results overlay.
func CloseHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.FromRequest(w, r).CloseSearch()
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// OpenBarHandler reveals the navbar search field.
func OpenBarHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.FromRequest(w, r).ToggleSearch(true)
		http.Redirect(w, r, redirect.Target(r), http.StatusFound)
	}
}

// CloseBarHandler hides the navbar search field.
func CloseBarHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.FromRequest(w, r).ToggleSearch(false)
		http.Redirect(w, r, redirect.Target(r), http.StatusFound)
	}
}
