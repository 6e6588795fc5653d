package bookshop

// FindBooksOfSameGenre returns all catalogue entries of the given genre in
// catalogue order. The shop's exclusivity primitive is held during the
// traversal, so the result is a consistent snapshot even under concurrent
// sales.
func FindBooksOfSameGenre(shop *Shop, genre Genre) []Book {
	return shop.catalogue.FilterByGenre(genre)
}

// FindSameBooks returns the entries present by value in both shops'
// catalogues, preserving the first shop's catalogue order. Both catalogue
// locks are held for the duration of the traversal, acquired in a stable
// global order, so two such queries running concurrently in opposite shop
// order cannot deadlock.
func FindSameBooks(first *Shop, second *Shop) []Book {
	return first.catalogue.IntersectWith(second.catalogue)
}
