package suggest

import (
	"context"
	"encoding/json"
	"net/http"
)

// Suggester completes partial titles.
type Suggester interface {
	Suggest(ctx context.Context, query string) []string
}

type response struct {
	Suggestions []string `json:"suggestions"`
}

// Handler returns JSON suggestions for autocomplete.
func Handler(s Suggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := s.Suggest(r.Context(), r.URL.Query().Get("q"))
		if results == nil {
			results = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response{Suggestions: results})
	}
}
