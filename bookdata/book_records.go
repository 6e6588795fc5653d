package bookdata

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/lambdacurry/bookmarket/bookshop"
)

var jsonAPI = jsoniter.ConfigFastest

// ErrInvalidBookData is returned when book record JSON is malformed or a
// record violates the book construction constraints.
var ErrInvalidBookData = errors.New("invalid book data")

// BookRecord is the JSON shape of a single book. Price accepts both JSON
// numbers and decimal strings; Genre is the stable display name.
type BookRecord struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Pages int             `json:"pages"`
	Genre string          `json:"genre"`
	ISBN  string          `json:"isbn"`
}

// DecodeBooks parses a JSON array of book records into Book values.
// Decoding fails as a whole on malformed JSON or on any record violating the
// construction constraints (negative price, non-positive pages, unknown
// genre). ISBNs are NOT validated here - that happens at catalogue entry.
func DecodeBooks(data []byte) ([]bookshop.Book, error) {
	var records []BookRecord
	if err := jsonAPI.Unmarshal(data, &records); err != nil {
		return nil, errors.Join(ErrInvalidBookData, err)
	}

	books := make([]bookshop.Book, 0, len(records))

	for i, record := range records {
		book, err := bookshop.BuildBook(record.Title, record.Price, record.Pages, bookshop.Genre(record.Genre), record.ISBN)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, errors.Join(ErrInvalidBookData, err))
		}

		books = append(books, book)
	}

	return books, nil
}

// EncodeBooks serializes books to a JSON array of book records.
func EncodeBooks(books []bookshop.Book) ([]byte, error) {
	records := make([]BookRecord, 0, len(books))

	for _, book := range books {
		records = append(records, BookRecord{
			Title: book.Title,
			Price: book.Price,
			Pages: book.Pages,
			Genre: book.Genre.String(),
			ISBN:  book.ISBN,
		})
	}

	return jsonAPI.Marshal(records)
}

// StockShop decodes a JSON array of book records and adds every book to the
// shop's catalogue. Books rejected by the ISBN-13 validation are skipped; the
// rest of the batch is still admitted. It returns the number of admitted
// books and the joined rejection errors, nil if every book was admitted.
func StockShop(shop *bookshop.Shop, data []byte) (int, error) {
	books, err := DecodeBooks(data)
	if err != nil {
		return 0, err
	}

	added := 0
	var rejections []error

	for _, book := range books {
		if addErr := shop.AddToCatalogue(book); addErr != nil {
			rejections = append(rejections, addErr)
			continue
		}

		added++
	}

	return added, errors.Join(rejections...)
}
