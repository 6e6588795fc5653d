package bookshop

import (
	"sync"

	"github.com/google/uuid"
)

// Catalogue is the ordered, possibly duplicate-containing collection of books
// a shop offers for sale. One mutex guards all entries; compound operations
// such as the purchase transaction run entirely inside a single critical
// section, so no two operations on the same catalogue ever interleave.
type Catalogue struct {
	id      uuid.UUID
	mu      sync.Mutex
	entries []Book
}

// NewCatalogue creates an empty catalogue.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		id:      uuid.New(),
		entries: make([]Book, 0),
	}
}

// Add validates the book's ISBN-13 and appends it to the end of the catalogue.
// On validation failure the catalogue is left unchanged and ErrInvalidISBN is
// returned with the rejection reason.
func (c *Catalogue) Add(book Book) error {
	if err := validateISBN13(book.ISBN); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, book)

	return nil
}

// Contains reports whether the catalogue holds an entry value-equal to book.
func (c *Catalogue) Contains(book Book) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.containsLocked(book)
}

// RemoveOne removes the earliest-inserted entry value-equal to book, if any,
// and reports whether a removal occurred.
func (c *Catalogue) RemoveOne(book Book) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeOneLocked(book)
}

// Size returns the number of entries, duplicates counted individually.
func (c *Catalogue) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Books returns a snapshot copy of all entries in catalogue order.
func (c *Catalogue) Books() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	books := make([]Book, len(c.entries))
	copy(books, c.entries)

	return books
}

// DistinctView returns the entries with value-duplicates collapsed to one,
// preserving first-occurrence order.
func (c *Catalogue) DistinctView() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	distinct := make([]Book, 0, len(c.entries))

	for _, entry := range c.entries {
		if !containsBook(distinct, entry) {
			distinct = append(distinct, entry)
		}
	}

	return distinct
}

// FilterByGenre returns all entries of the given genre in catalogue order.
func (c *Catalogue) FilterByGenre(genre Genre) []Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	matches := make([]Book, 0)

	for _, entry := range c.entries {
		if entry.Genre == genre {
			matches = append(matches, entry)
		}
	}

	return matches
}

// IntersectWith returns the entries present by value in both catalogues,
// preserving this catalogue's order. Duplicates in this catalogue are each
// tested independently against membership in the other. Both catalogue locks
// are held for the duration, acquired in a stable global order so concurrent
// intersections in opposite argument order cannot deadlock.
func (c *Catalogue) IntersectWith(other *Catalogue) []Book {
	unlock := lockPair(c, other)
	defer unlock()

	common := make([]Book, 0)

	for _, entry := range c.entries {
		if other.containsLocked(entry) {
			common = append(common, entry)
		}
	}

	return common
}

// lockPair acquires both catalogue locks ordered by catalogue identifier.
// The returned function releases them in reverse order.
func lockPair(a, b *Catalogue) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if b.id.String() < a.id.String() {
		first, second = b, a
	}

	first.mu.Lock()
	second.mu.Lock()

	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// containsLocked must only be called while holding the catalogue mutex.
func (c *Catalogue) containsLocked(book Book) bool {
	return containsBook(c.entries, book)
}

// removeOneLocked must only be called while holding the catalogue mutex.
// If duplicates exist, the earliest-inserted match is removed.
func (c *Catalogue) removeOneLocked(book Book) bool {
	for i, entry := range c.entries {
		if entry.Equals(book) {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}

	return false
}

func containsBook(books []Book, book Book) bool {
	for _, entry := range books {
		if entry.Equals(book) {
			return true
		}
	}

	return false
}
