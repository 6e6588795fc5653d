package bookshop

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Book represents an immutable book value. Two books with identical fields are
// indistinguishable duplicates - equality is by value, never by identity, so a
// catalogue may hold several entries for the same edition.
//
// A Book may exist in memory with an invalid ISBN; the ISBN-13 checksum is
// enforced at catalogue-entry time, not at construction.
type Book struct {
	Title string
	Price decimal.Decimal
	Pages int
	Genre Genre
	ISBN  string
}

// BuildBook creates a new Book value, enforcing the type-level constraints:
// a non-negative price, a positive page count, and a known genre.
func BuildBook(title string, price decimal.Decimal, pages int, genre Genre, isbn string) (Book, error) {
	if price.IsNegative() {
		return Book{}, fmt.Errorf("%w: %s", ErrNegativePrice, price)
	}

	if pages <= 0 {
		return Book{}, fmt.Errorf("%w: %d", ErrInvalidPageCount, pages)
	}

	if !genre.IsValid() {
		return Book{}, fmt.Errorf("%w: %q", ErrUnknownGenre, genre)
	}

	book := Book{
		Title: title,
		Price: price,
		Pages: pages,
		Genre: genre,
		ISBN:  isbn,
	}

	return book, nil
}

// Equals reports whether both books match in every field, with prices compared
// by numeric value so that 150 and 150.00 are the same price.
func (b Book) Equals(other Book) bool {
	return b.Title == other.Title &&
		b.Price.Equal(other.Price) &&
		b.Pages == other.Pages &&
		b.Genre == other.Genre &&
		b.ISBN == other.ISBN
}

// String returns a short human-readable description used in logs.
func (b Book) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.Title, b.Genre, b.ISBN)
}
