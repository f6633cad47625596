package catalog

import "github.com/JoeSaf/homeStream/internal/tmdb"

// placeholder is served whenever the live API cannot fill a section.
var placeholder = []tmdb.MediaItem{
	{
		ID:       1,
		Title:    "The Dark Knight",
		Name:     "The Dark Knight",
		Overview: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		GenreIDs: []int{28, 80, 18},
	},
	{
		ID:       2,
		Title:    "Inception",
		Name:     "Inception",
		Overview: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		GenreIDs: []int{28, 878, 53},
	},
	{
		ID:       3,
		Title:    "Pulp Fiction",
		Name:     "Pulp Fiction",
		Overview: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		GenreIDs: []int{80, 18},
	},
	{
		ID:       4,
		Title:    "The Godfather",
		Name:     "The Godfather",
		Overview: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		GenreIDs: []int{80, 18},
	},
	{
		ID:       5,
		Title:    "Breaking Bad",
		Name:     "Breaking Bad",
		Overview: "A high school chemistry teacher diagnosed with inoperable lung cancer turns to manufacturing and selling methamphetamine in order to secure his family's future.",
		GenreIDs: []int{18, 80},
	},
	{
		ID:       6,
		Title:    "Stranger Things",
		Name:     "Stranger Things",
		Overview: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
		GenreIDs: []int{18, 14, 27},
	},
	{
		ID:       7,
		Title:    "The Office",
		Name:     "The Office",
		Overview: "A mockumentary on a group of typical office workers, where the workday consists of ego clashes, inappropriate behavior, and tedium.",
		GenreIDs: []int{35},
	},
	{
		ID:       8,
		Title:    "Game of Thrones",
		Name:     "Game of Thrones",
		Overview: "Nine noble families fight for control over the lands of Westeros, while an ancient enemy returns after being dormant for millennia.",
		GenreIDs: []int{18, 14, 10759},
	},
}

// Placeholder returns a fresh copy of the fixed fallback content.
func Placeholder() []tmdb.MediaItem {
	out := make([]tmdb.MediaItem, len(placeholder))
	for i, item := range placeholder {
		item.GenreIDs = append([]int(nil), item.GenreIDs...)
		out[i] = item
	}
	return out
}
