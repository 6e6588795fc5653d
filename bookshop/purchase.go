package bookshop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	successOutcome           = "success"
	insufficientFundsOutcome = "insufficient-funds"
	notAvailableOutcome      = "not-available"
)

// Receipt documents a single completed sale. Receipts have surrogate identity
// so that value-equal books sold in separate transactions stay distinguishable
// in the shop's sales ledger; books themselves never do.
type Receipt struct {
	ID           uuid.UUID
	CustomerName string
	ShopName     string
	Book         Book
	Price        decimal.Decimal
	OccurredAt   time.Time
}

// buildReceipt creates a Receipt with UTC-normalized, microsecond-precision timing.
func buildReceipt(customerName string, shopName string, book Book, occurredAt time.Time) Receipt {
	return Receipt{
		ID:           uuid.New(),
		CustomerName: customerName,
		ShopName:     shopName,
		Book:         book,
		Price:        book.Price,
		OccurredAt:   occurredAt.UTC().Truncate(time.Microsecond),
	}
}

// PurchaseResult represents the outcome of a purchase transaction.
// A transaction either fully completes - library, budget, catalogue, and
// income all updated - or fully aborts with zero mutations applied.
//
// IMPORTANT: PurchaseResult should only be constructed using the provided
// factory functions: SuccessfulPurchase, InsufficientFundsPurchase, or
// NotAvailablePurchase.
type PurchaseResult struct {
	Outcome string  // "success", "insufficient-funds", or "not-available"
	Receipt Receipt // zero value unless the purchase succeeded
	Err     error   // nil for a successful purchase
}

// SuccessfulPurchase creates a PurchaseResult for a completed transaction.
func SuccessfulPurchase(receipt Receipt) PurchaseResult {
	return PurchaseResult{
		Outcome: successOutcome,
		Receipt: receipt,
	}
}

// InsufficientFundsPurchase creates a PurchaseResult for a transaction aborted
// because the book price exceeds the customer's budget.
func InsufficientFundsPurchase(customerName string, book Book) PurchaseResult {
	return PurchaseResult{
		Outcome: insufficientFundsOutcome,
		Err:     fmt.Errorf("%w: %s cannot afford %s priced %s", ErrInsufficientFunds, customerName, book, book.Price),
	}
}

// NotAvailablePurchase creates a PurchaseResult for a transaction aborted
// because the shop's catalogue held no matching entry at transaction time.
// The loser of a concurrent purchase race receives this outcome.
func NotAvailablePurchase(shopName string, book Book) PurchaseResult {
	return PurchaseResult{
		Outcome: notAvailableOutcome,
		Err:     fmt.Errorf("%w: no %s in shop %s", ErrBookNotAvailable, book, shopName),
	}
}

// Succeeded reports whether the transaction fully completed.
func (r PurchaseResult) Succeeded() bool {
	return r.Outcome == successOutcome
}

// HasError returns the rejection reason, or nil for a successful purchase.
func (r PurchaseResult) HasError() error {
	return r.Err
}
