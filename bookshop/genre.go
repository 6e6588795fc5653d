package bookshop

// Genre classifies a book within the fixed, closed set of genres the marketplace knows about.
// The value of each constant is its stable display name.
type Genre string

const (
	Adventure Genre = "Adventure"
	Biography Genre = "Biography"
	Comic     Genre = "Comic"
	Fantasy   Genre = "Fantasy"
)

// AllGenres returns the closed set of genres in display order.
func AllGenres() []Genre {
	return []Genre{Adventure, Biography, Comic, Fantasy}
}

// IsValid reports whether g is one of the known genres.
func (g Genre) IsValid() bool {
	switch g {
	case Adventure, Biography, Comic, Fantasy:
		return true
	default:
		return false
	}
}

// String returns the stable display name of the genre.
func (g Genre) String() string {
	return string(g)
}
