package tmdb

import "strings"

// MediaItem is a movie or show card as returned by list and search endpoints.
// Movies carry Title, shows carry Name.
type MediaItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	GenreIDs     []int   `json:"genre_ids"`
	MediaType    string  `json:"media_type,omitempty"`
	VoteAverage  float64 `json:"vote_average,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}

// DisplayTitle returns the movie title, or the show name when there is none.
func (m MediaItem) DisplayTitle() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	return strings.TrimSpace(m.Name)
}

// Page is the paged envelope shared by all list endpoints.
type Page struct {
	Page         int         `json:"page"`
	Results      []MediaItem `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// Kind selects the movie or tv flavour of an endpoint.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Well known genre ids used by the discovery rows.
const (
	GenreAction = 28
	GenreComedy = 35
	GenreHorror = 27
)
