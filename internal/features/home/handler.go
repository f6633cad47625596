package home

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/ui"
)

// Sessions resolves the view state of the calling browser.
type Sessions interface {
	FromRequest(w http.ResponseWriter, r *http.Request) *session.State
}

// Loader fetches the landing screen content.
type Loader interface {
	LoadHome(ctx context.Context) catalog.Home
}

// Handler renders whichever view the session is on. Content is fetched on
// the first visit of a session and again on ?reload=1.
func Handler(sessions Sessions, loader Loader, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		state := sessions.FromRequest(w, r)
		reload := r.URL.Query().Get("reload") == "1"
		if reload || state.NeedsLoad() {
			home := loader.LoadHome(r.Context())
			if err := r.Context().Err(); err != nil {
				// Every section failed for the caller, not for TMDB. Load again next visit.
				log.Debug("client gone before home content loaded", zap.Error(err))
				return
			}
			state.SetHome(home)
			log.Debug("home content loaded",
				zap.Int("sections", len(home.Sections)),
				zap.Int("featured", len(home.Featured)))
		}
		if reload {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		snap := state.Snapshot()
		var page string
		switch snap.View {
		case session.ViewPlayer:
			page = ui.RenderPlayerPage(ui.PlayerPageData{
				Item:  *snap.Selected,
				Muted: r.URL.Query().Get("muted") != "0",
			})
		case session.ViewSearch:
			page = ui.RenderSearchPage(ui.SearchPageData{
				Query:       snap.Query,
				CurrentPath: "/",
				Results:     snap.SearchResults,
			})
		default:
			page = ui.RenderHomePage(ui.HomePageData{
				ShowSearch:  snap.ShowSearch,
				Query:       snap.Query,
				CurrentPath: "/",
				Featured:    snap.Home.Featured,
				Sections:    snap.Home.Sections,
				MyList:      snap.MyList,
			})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}
