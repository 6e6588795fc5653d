package bookshop

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Customer holds a budget and a personal, append-only library of owned books.
// A customer may be driven from multiple goroutines: its own mutex covers
// budget and library, and during a purchase it is acquired inside the shop
// catalogue's critical section. Customers never lock shops or other customers
// on their own, so the nesting cannot form a cycle.
type Customer struct {
	name      string
	mu        sync.Mutex
	budget    decimal.Decimal
	library   []Book
	observers observers
}

// NewCustomer creates a customer with zero budget, an empty library, and
// optional configuration.
func NewCustomer(name string, opts ...CustomerOption) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	customer := &Customer{
		name:   name,
		budget: decimal.Zero,
	}

	for _, opt := range opts {
		if err := opt(customer); err != nil {
			return nil, err
		}
	}

	return customer, nil
}

// Name returns the customer's identity.
func (c *Customer) Name() string {
	return c.name
}

// AddToBudget deposits a non-negative amount into the customer's budget.
func (c *Customer) AddToBudget(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.budget = c.budget.Add(amount)

	return nil
}

// Budget returns the current budget.
func (c *Customer) Budget() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.budget
}

// Library returns a copy of the customer's library in acquisition order.
func (c *Customer) Library() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	library := make([]Book, len(c.library))
	copy(library, c.library)

	return library
}

// Owns reports whether the library holds an entry value-equal to book.
func (c *Customer) Owns(book Book) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return containsBook(c.library, book)
}

// Buy executes the purchase transaction for one book from one shop:
//
//  1. Acquire exclusive access to the shop's catalogue, then to the customer.
//  2. Abort with insufficient-funds if the price exceeds the budget.
//  3. Abort with not-available if the catalogue holds no matching entry.
//  4. Atomically: append the book to the library, subtract the price from the
//     budget, remove one matching catalogue entry, add the price to the
//     shop's income and sales ledger.
//
// All three outcomes are expected results of normal operation and are reported
// through the returned PurchaseResult, never as a fault. A failed purchase
// leaves every involved entity unchanged, so the caller can safely retry.
// When several buyers race for the same single copy, exactly one succeeds and
// the others observe the book as not available.
func (c *Customer) Buy(ctx context.Context, shop *Shop, book Book) PurchaseResult {
	start := time.Now()
	ctx, span := c.observers.startSpan(ctx, "bookshop.purchase", map[string]string{
		"customer": c.name,
		"shop":     shop.name,
		"book":     book.Title,
	})

	result := c.executePurchase(shop, book)

	c.observers.finishSpan(span, result.Outcome, nil)
	c.observers.recordDuration("purchase_duration_seconds", time.Since(start), map[string]string{
		"shop":    shop.name,
		"outcome": result.Outcome,
	})
	c.observers.incrementCounter("purchase_attempts_total", map[string]string{
		"shop":    shop.name,
		"outcome": result.Outcome,
	})

	switch result.Outcome {
	case successOutcome:
		c.observers.logInfo(ctx, "book bought",
			"book", book.String(), "customer", c.name, "shop", shop.name,
			"price", book.Price.String(), "receipt", result.Receipt.ID.String())
	default:
		c.observers.logError(ctx, "purchase rejected",
			"book", book.String(), "customer", c.name, "shop", shop.name,
			"reason", result.Err.Error())
	}

	return result
}

// executePurchase holds the single critical section of the transaction.
func (c *Customer) executePurchase(shop *Shop, book Book) PurchaseResult {
	shop.catalogue.mu.Lock()
	defer shop.catalogue.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if book.Price.GreaterThan(c.budget) {
		return InsufficientFundsPurchase(c.name, book)
	}

	if !shop.catalogue.containsLocked(book) {
		return NotAvailablePurchase(shop.name, book)
	}

	receipt := buildReceipt(c.name, shop.name, book, time.Now())

	c.library = append(c.library, book)
	c.budget = c.budget.Sub(book.Price)
	shop.catalogue.removeOneLocked(book)
	shop.recordSaleLocked(receipt)

	return SuccessfulPurchase(receipt)
}
