// Package bookdata loads and dumps book records as JSON.
//
// It is the data-loading collaborator of the bookshop package: records are
// decoded into bookshop.Book values with construction-level validation only,
// while the ISBN-13 checksum is still enforced when a book enters a
// catalogue. StockShop combines both steps and reports per-book rejections
// without aborting the rest of the batch.
package bookdata
