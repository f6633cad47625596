package proxy

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/platform/cache"
)

const (
	maxResourceSize = 5 << 20 // 5MB
	cacheTTL        = 10 * time.Minute
)

var allowedHosts = []string{
	"image.tmdb.org",
	"images.unsplash.com",
}

// Doer performs outbound requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type cachedResource struct {
	Data        []byte
	ContentType string
}

// Handler returns an HTTP handler that proxies artwork from the image CDNs.
func Handler(client Doer, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	resCache := cache.New[cachedResource](cacheTTL)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		raw := strings.TrimSpace(r.URL.Query().Get("url"))
		if raw == "" {
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}

		target, err := url.Parse(raw)
		if err != nil || (target.Scheme != "https" && target.Scheme != "http") || target.Host == "" {
			http.Error(w, "invalid url", http.StatusBadRequest)
			return
		}

		if !isAllowedHost(target.Hostname()) {
			http.Error(w, "host not permitted", http.StatusForbidden)
			return
		}

		cacheKey := target.String()
		if entry, ok := resCache.Get(cacheKey); ok {
			writeCached(w, entry)
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		req.Header.Set("User-Agent", "HomeStreamProxy/1.0")

		resp, err := client.Do(req)
		if err != nil {
			log.Warn("image fetch failed", zap.String("url", cacheKey), zap.Error(err))
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			http.Error(w, "upstream status "+resp.Status, http.StatusBadGateway)
			return
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize+1))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		if len(body) > maxResourceSize {
			log.Warn("image exceeds proxy size limit", zap.String("url", cacheKey))
			http.Error(w, "upstream resource too large", http.StatusBadGateway)
			return
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		entry := cachedResource{Data: body, ContentType: contentType}
		resCache.Set(cacheKey, entry)
		writeCached(w, entry)
	}
}

func writeCached(w http.ResponseWriter, entry cachedResource) {
	w.Header().Set("Content-Type", entry.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(entry.Data)
}

func isAllowedHost(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range allowedHosts {
		if host == allowed {
			return true
		}
	}
	return false
}
