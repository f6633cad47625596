package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/features/api"
	"github.com/JoeSaf/homeStream/internal/features/health"
	"github.com/JoeSaf/homeStream/internal/features/home"
	"github.com/JoeSaf/homeStream/internal/features/mylist"
	"github.com/JoeSaf/homeStream/internal/features/player"
	"github.com/JoeSaf/homeStream/internal/features/proxy"
	"github.com/JoeSaf/homeStream/internal/features/search"
	"github.com/JoeSaf/homeStream/internal/features/style"
	"github.com/JoeSaf/homeStream/internal/features/suggest"
	"github.com/JoeSaf/homeStream/internal/platform/logging"
	"github.com/JoeSaf/homeStream/internal/platform/metrics"
	"github.com/JoeSaf/homeStream/internal/session"
)

// App wires dependencies and exposes the HTTP handler tree.
type App struct {
	router chi.Router
}

// New constructs a fully wired application. images performs the image
// proxy's outbound requests.
func New(cat *catalog.Service, sessions *session.Store, images proxy.Doer, log *zap.Logger, registry *metrics.Registry) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if registry == nil {
		registry = metrics.New()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.Middleware(log), middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", registry.Handler())
	r.Method(http.MethodGet, "/healthz", registry.Wrap("health", health.Handler()))
	r.Method(http.MethodGet, "/style.css", registry.Wrap("style", style.Handler()))
	r.Method(http.MethodGet, "/suggest", registry.Wrap("suggest", suggest.Handler(cat)))
	r.Handle("/proxy", registry.Wrap("proxy", proxy.Handler(images, log)))

	r.Method(http.MethodGet, "/", registry.Wrap("home", home.Handler(sessions, cat, log)))

	r.Method(http.MethodGet, "/search", registry.Wrap("search", search.Handler(sessions, cat)))
	r.Method(http.MethodGet, "/search/close", registry.Wrap("search_close", search.CloseHandler(sessions)))
	r.Method(http.MethodGet, "/search/open", registry.Wrap("search_open", search.OpenBarHandler(sessions)))
	r.Method(http.MethodGet, "/search/close-bar", registry.Wrap("search_close_bar", search.CloseBarHandler(sessions)))

	r.Method(http.MethodGet, "/play", registry.Wrap("play", player.PlayHandler(sessions)))
	r.Method(http.MethodGet, "/player/close", registry.Wrap("player_close", player.CloseHandler(sessions)))

	r.Method(http.MethodGet, "/mylist/add", registry.Wrap("mylist_add", mylist.AddHandler(sessions, log)))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/home", registry.Wrap("api_home", api.HomeHandler(sessions, cat)))
		r.Method(http.MethodGet, "/search", registry.Wrap("api_search", api.SearchHandler(cat)))
	})

	return &App{router: r}
}

// Handler returns the root http.Handler.
func (a *App) Handler() http.Handler {
	return a.router
}
