// Package bookshop provides an in-process bookshop marketplace:
// shops hold a catalogue of books for sale, customers hold a budget
// and a personal library, and a purchase moves a book from a shop's
// catalogue into a customer's library while moving money the other way.
//
// The package is safe for concurrent use. Every shop owns exactly one
// exclusivity primitive guarding its catalogue, income, and sales
// ledger, so purchases from different shops proceed fully in parallel
// while concurrent purchases of the same book copy are serialized:
// at most one buyer wins, the others are told the book is not
// available and no partial state change is ever observable.
//
// Key types:
//   - Book: immutable value object with structural equality
//   - Catalogue: ordered, duplicate-friendly collection of books
//   - Shop, Customer: the two transacting parties
//   - PurchaseResult: tagged outcome of the purchase transaction
//
// Common usage pattern:
//
//	shop, _ := bookshop.NewShop("Riverside Books")
//	_ = shop.AddToCatalogue(book)
//
//	customer, _ := bookshop.NewCustomer("John")
//	_ = customer.AddToBudget(decimal.NewFromInt(200))
//
//	result := customer.Buy(ctx, shop, book)
//	if result.Succeeded() {
//		// result.Receipt documents the sale
//	}
package bookshop
