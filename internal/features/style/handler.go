package style

import (
	"net/http"

	"github.com/JoeSaf/homeStream/internal/ui"
)

// Handler returns the base CSS stylesheet.
func Handler() http.HandlerFunc {
	css := []byte(ui.RenderStyle())
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(css)
	}
}
