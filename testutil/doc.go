// Package testutil provides book fixtures and observability test doubles
// shared by the bookshop and bookdata test suites.
package testutil
