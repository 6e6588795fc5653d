package bookshop

import (
	"context"

	"github.com/shopspring/decimal"
)

// Shop is a named container combining a catalogue with a monotonically
// increasing income and a ledger of completed sales. The catalogue's mutex
// guards income and ledger too, so the paired mutations of a purchase are
// atomic relative to every other operation on the same shop.
type Shop struct {
	name      string
	catalogue *Catalogue
	income    decimal.Decimal
	sales     []Receipt
	observers observers
}

// NewShop creates a shop with an empty catalogue, zero income, and optional configuration.
func NewShop(name string, opts ...ShopOption) (*Shop, error) {
	if name == "" {
		return nil, ErrEmptyShopName
	}

	shop := &Shop{
		name:      name,
		catalogue: NewCatalogue(),
		income:    decimal.Zero,
	}

	for _, opt := range opts {
		if err := opt(shop); err != nil {
			return nil, err
		}
	}

	return shop, nil
}

// Name returns the shop's identity.
func (s *Shop) Name() string {
	return s.name
}

// AddToCatalogue validates the book's ISBN-13 and appends it to the catalogue.
// On rejection, neither catalogue nor income changes and the validation error
// is returned to the caller.
func (s *Shop) AddToCatalogue(book Book) error {
	if err := s.catalogue.Add(book); err != nil {
		s.observers.logError(context.Background(), "book rejected from catalogue",
			"shop", s.name, "book", book.String(), "reason", err.Error())
		s.observers.incrementCounter("catalogue_rejections_total", map[string]string{"shop": s.name})

		return err
	}

	s.observers.logInfo(context.Background(), "book added to catalogue",
		"shop", s.name, "book", book.String())
	s.observers.incrementCounter("catalogue_admissions_total", map[string]string{"shop": s.name})

	return nil
}

// Catalogue returns a snapshot copy of the catalogue entries in order.
func (s *Shop) Catalogue() []Book {
	return s.catalogue.Books()
}

// DistinctCatalogue returns the catalogue with value-duplicates collapsed,
// first occurrence kept.
func (s *Shop) DistinctCatalogue() []Book {
	return s.catalogue.DistinctView()
}

// Contains reports whether the catalogue holds an entry value-equal to book.
func (s *Shop) Contains(book Book) bool {
	return s.catalogue.Contains(book)
}

// CatalogueSize returns the number of catalogue entries, duplicates counted individually.
func (s *Shop) CatalogueSize() int {
	return s.catalogue.Size()
}

// Income returns the accumulated income.
func (s *Shop) Income() decimal.Decimal {
	s.catalogue.mu.Lock()
	defer s.catalogue.mu.Unlock()

	return s.income
}

// Sales returns a copy of the ledger of completed sales in transaction order.
func (s *Shop) Sales() []Receipt {
	s.catalogue.mu.Lock()
	defer s.catalogue.mu.Unlock()

	sales := make([]Receipt, len(s.sales))
	copy(sales, s.sales)

	return sales
}

// RecordSale adds a non-negative amount to the shop's income outside a
// purchase transaction, e.g. for sales settled externally.
func (s *Shop) RecordSale(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	s.catalogue.mu.Lock()
	defer s.catalogue.mu.Unlock()

	s.income = s.income.Add(amount)

	return nil
}

// recordSaleLocked applies the shop-side mutations of a purchase transaction.
// Must only be called while holding the catalogue mutex.
func (s *Shop) recordSaleLocked(receipt Receipt) {
	s.income = s.income.Add(receipt.Price)
	s.sales = append(s.sales, receipt)
}
