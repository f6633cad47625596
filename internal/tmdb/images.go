package tmdb

import "strings"

const imageBaseURL = "https://image.tmdb.org/t/p"

// Image sizes accepted by the image CDN.
const (
	SizeW300     = "w300"
	SizeW500     = "w500"
	SizeW780     = "w780"
	SizeW1280    = "w1280"
	SizeOriginal = "original"
)

// ImageURL builds a CDN url for a backdrop or poster path. Empty paths give
// an empty url so callers can pick their own fallback artwork.
func ImageURL(path, size string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return imageBaseURL + "/" + size + path
}
