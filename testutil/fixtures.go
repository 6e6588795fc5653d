package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/lambdacurry/bookmarket/bookshop"
)

// Known-good ISBN-13 strings for fixtures.
const (
	ValidISBNA = "978-3608963762"
	ValidISBNB = "978-3841335180"
	ValidISBNC = "978-1861972712"
	ValidISBND = "978-1-098-10013-1"

	// InvalidISBN has a wrong check digit.
	InvalidISBN = "978-3442267747"
)

// ComicBook returns a comic fixture priced 150.
func ComicBook() bookshop.Book {
	return mustBuildBook("Watchtower Annual", decimal.NewFromInt(150), 340, bookshop.Comic, ValidISBNC)
}

// AdventureBook returns an adventure fixture priced 250.
func AdventureBook() bookshop.Book {
	return mustBuildBook("The Long Portage", decimal.NewFromInt(250), 320, bookshop.Adventure, ValidISBNA)
}

// FantasyBook returns a fantasy fixture priced 35.50.
func FantasyBook() bookshop.Book {
	return mustBuildBook("Ninth Gate of Morning", decimal.NewFromFloat(35.50), 512, bookshop.Fantasy, ValidISBNB)
}

// BiographyBook returns a biography fixture priced 42.
func BiographyBook() bookshop.Book {
	return mustBuildBook("A Typesetter's Life", decimal.NewFromInt(42), 288, bookshop.Biography, ValidISBND)
}

// BookWithInvalidISBN returns a book that will be rejected at catalogue entry.
func BookWithInvalidISBN() bookshop.Book {
	return mustBuildBook("Misprinted", decimal.NewFromInt(1), 1, bookshop.Adventure, InvalidISBN)
}

// BookPriced returns the given book with its price replaced, keeping all other fields.
func BookPriced(book bookshop.Book, price decimal.Decimal) bookshop.Book {
	priced, err := bookshop.BuildBook(book.Title, price, book.Pages, book.Genre, book.ISBN)
	if err != nil {
		panic(err)
	}

	return priced
}

func mustBuildBook(title string, price decimal.Decimal, pages int, genre bookshop.Genre, isbn string) bookshop.Book {
	book, err := bookshop.BuildBook(title, price, pages, genre, isbn)
	if err != nil {
		panic(err)
	}

	return book
}
