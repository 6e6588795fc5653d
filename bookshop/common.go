package bookshop

import (
	"errors"
)

var (
	// ErrInvalidISBN is returned when a book is rejected at catalogue entry
	// because its ISBN fails the ISBN-13 checksum validation.
	ErrInvalidISBN = errors.New("invalid ISBN-13")

	// ErrInsufficientFunds is returned when a customer's budget does not cover the book price.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBookNotAvailable is returned when the target shop's catalogue holds no matching entry
	// at transaction time, including the loser of a concurrent purchase race.
	ErrBookNotAvailable = errors.New("book is not available")

	// ErrNegativePrice is returned when a book is built with a negative price.
	ErrNegativePrice = errors.New("book price must not be negative")

	// ErrInvalidPageCount is returned when a book is built with zero or negative pages.
	ErrInvalidPageCount = errors.New("book page count must be positive")

	// ErrUnknownGenre is returned when a book is built with a genre outside the closed set.
	ErrUnknownGenre = errors.New("unknown genre")

	// ErrNegativeAmount is returned when a negative amount is deposited or recorded as a sale.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrEmptyShopName is returned when a shop is created without a name.
	ErrEmptyShopName = errors.New("empty shop name supplied")

	// ErrEmptyCustomerName is returned when a customer is created without a name.
	ErrEmptyCustomerName = errors.New("empty customer name supplied")
)
