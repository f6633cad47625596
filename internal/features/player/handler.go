package player

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/JoeSaf/homeStream/internal/session"
)

// Sessions resolves the view state of the calling browser.
type Sessions interface {
	FromRequest(w http.ResponseWriter, r *http.Request) *session.State
}

// PlayHandler opens the player for a title the session already knows about.
func PlayHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("id")))
		if err != nil {
			http.Error(w, "usage: /play?id=<id>", http.StatusBadRequest)
			return
		}
		state := sessions.FromRequest(w, r)
		item, ok := state.Lookup(id)
		if !ok {
			http.Error(w, "unknown title", http.StatusNotFound)
			return
		}
		state.Play(item)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// CloseHandler returns from the player to the home screen.
func CloseHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.FromRequest(w, r).ClosePlayer()
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
