package mylist

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/features/redirect"
	"github.com/JoeSaf/homeStream/internal/session"
)

// Sessions resolves the view state of the calling browser.
type Sessions interface {
	FromRequest(w http.ResponseWriter, r *http.Request) *session.State
}

// AddHandler appends a known title to My List and redirects back.
func AddHandler(sessions Sessions, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("id")))
		if err != nil {
			http.Error(w, "usage: /mylist/add?id=<id>", http.StatusBadRequest)
			return
		}
		state := sessions.FromRequest(w, r)
		item, ok := state.Lookup(id)
		if !ok {
			http.Error(w, "unknown title", http.StatusNotFound)
			return
		}
		if state.AddToList(item) {
			log.Debug("added to my list", zap.Int("id", id))
		}
		http.Redirect(w, r, redirect.Target(r), http.StatusFound)
	}
}
