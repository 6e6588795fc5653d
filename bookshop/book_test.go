package bookshop_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdacurry/bookmarket/bookshop"
	"github.com/lambdacurry/bookmarket/testutil"
)

func Test_BuildBook_Success(t *testing.T) {
	// act
	book, err := bookshop.BuildBook("Test1", decimal.NewFromInt(150), 340, bookshop.Comic, testutil.ValidISBNC)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Test1", book.Title)
	assert.True(t, book.Price.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 340, book.Pages)
	assert.Equal(t, bookshop.Comic, book.Genre)
	assert.Equal(t, testutil.ValidISBNC, book.ISBN)
}

func Test_BuildBook_AcceptsInvalidISBN(t *testing.T) {
	// the checksum is enforced at catalogue entry, not at construction

	// act
	book, err := bookshop.BuildBook("fake", decimal.NewFromInt(1), 1, bookshop.Adventure, testutil.InvalidISBN)

	// assert
	require.NoError(t, err)
	assert.Equal(t, testutil.InvalidISBN, book.ISBN)
}

func Test_BuildBook_TypeConstraintViolations(t *testing.T) {
	testCases := []struct {
		name        string
		price       decimal.Decimal
		pages       int
		genre       bookshop.Genre
		expectedErr error
	}{
		{
			name:        "negative price",
			price:       decimal.NewFromInt(-1),
			pages:       100,
			genre:       bookshop.Comic,
			expectedErr: bookshop.ErrNegativePrice,
		},
		{
			name:        "zero pages",
			price:       decimal.NewFromInt(10),
			pages:       0,
			genre:       bookshop.Comic,
			expectedErr: bookshop.ErrInvalidPageCount,
		},
		{
			name:        "negative pages",
			price:       decimal.NewFromInt(10),
			pages:       -5,
			genre:       bookshop.Comic,
			expectedErr: bookshop.ErrInvalidPageCount,
		},
		{
			name:        "unknown genre",
			price:       decimal.NewFromInt(10),
			pages:       100,
			genre:       bookshop.Genre("Horror"),
			expectedErr: bookshop.ErrUnknownGenre,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := bookshop.BuildBook("Test", tc.price, tc.pages, tc.genre, testutil.ValidISBNA)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_Book_Equals_IdenticalFields(t *testing.T) {
	// arrange
	first := testutil.ComicBook()
	second := testutil.ComicBook()

	// assert
	assert.True(t, first.Equals(second))
	assert.True(t, second.Equals(first))
}

func Test_Book_Equals_PriceComparedByValue(t *testing.T) {
	// arrange - 150 and 150.00 are the same price in different representations
	first := testutil.BookPriced(testutil.ComicBook(), decimal.NewFromInt(150))
	second := testutil.BookPriced(testutil.ComicBook(), decimal.RequireFromString("150.00"))

	// assert
	assert.True(t, first.Equals(second))
}

func Test_Book_Equals_DifferingISBN(t *testing.T) {
	// arrange - same title, price, pages, and genre, but another edition
	first, err := bookshop.BuildBook("Test1", decimal.NewFromInt(150), 340, bookshop.Comic, testutil.ValidISBNC)
	require.NoError(t, err)
	second, err := bookshop.BuildBook("Test1", decimal.NewFromInt(150), 340, bookshop.Comic, testutil.ValidISBNA)
	require.NoError(t, err)

	// assert
	assert.False(t, first.Equals(second))
}

func Test_Book_Equals_DifferingTitle(t *testing.T) {
	// arrange
	first, err := bookshop.BuildBook("Test1", decimal.NewFromInt(150), 340, bookshop.Comic, testutil.ValidISBNC)
	require.NoError(t, err)
	second, err := bookshop.BuildBook("Test2", decimal.NewFromInt(150), 340, bookshop.Comic, testutil.ValidISBNC)
	require.NoError(t, err)

	// assert
	assert.False(t, first.Equals(second))
}

func Test_AllGenres_IsTheClosedSet(t *testing.T) {
	// act
	genres := bookshop.AllGenres()

	// assert
	assert.Equal(t, []bookshop.Genre{bookshop.Adventure, bookshop.Biography, bookshop.Comic, bookshop.Fantasy}, genres)

	for _, genre := range genres {
		assert.True(t, genre.IsValid())
	}
}

func Test_Genre_IsValid_RejectsUnknown(t *testing.T) {
	assert.False(t, bookshop.Genre("Horror").IsValid())
	assert.False(t, bookshop.Genre("").IsValid())
}

func Test_Genre_String_IsTheDisplayName(t *testing.T) {
	assert.Equal(t, "Adventure", bookshop.Adventure.String())
	assert.Equal(t, "Biography", bookshop.Biography.String())
	assert.Equal(t, "Comic", bookshop.Comic.String())
	assert.Equal(t, "Fantasy", bookshop.Fantasy.String())
}
