package bookshop_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdacurry/bookmarket/bookshop"
	"github.com/lambdacurry/bookmarket/testutil"
)

func Test_NewShop_RequiresName(t *testing.T) {
	// act
	_, err := bookshop.NewShop("")

	// assert
	assert.ErrorIs(t, err, bookshop.ErrEmptyShopName)
}

func Test_NewShop_StartsEmptyWithZeroIncome(t *testing.T) {
	// act
	shop, err := bookshop.NewShop("Shop1")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Shop1", shop.Name())
	assert.Empty(t, shop.Catalogue())
	assert.True(t, shop.Income().IsZero())
	assert.Empty(t, shop.Sales())
}

func Test_Shop_AddToCatalogue_Success(t *testing.T) {
	// arrange
	spy := testutil.NewLoggerSpy()
	shop, err := bookshop.NewShop("Shop1", bookshop.WithShopLogger(spy))
	require.NoError(t, err)

	// act
	addErr := shop.AddToCatalogue(testutil.ComicBook())

	// assert
	require.NoError(t, addErr)
	assert.True(t, shop.Contains(testutil.ComicBook()))
	assert.True(t, spy.HasRecord("info", "book added to catalogue"))
}

func Test_Shop_AddToCatalogue_RejectsInvalidISBN(t *testing.T) {
	// arrange
	spy := testutil.NewLoggerSpy()
	metrics := testutil.NewMetricsCollectorSpy()
	shop, err := bookshop.NewShop("Shop1",
		bookshop.WithShopLogger(spy),
		bookshop.WithShopMetrics(metrics),
	)
	require.NoError(t, err)

	// act
	addErr := shop.AddToCatalogue(testutil.BookWithInvalidISBN())

	// assert - no catalogue or income change
	assert.ErrorIs(t, addErr, bookshop.ErrInvalidISBN)
	assert.Equal(t, 0, shop.CatalogueSize())
	assert.True(t, shop.Income().IsZero())
	assert.True(t, spy.HasRecord("error", "book rejected from catalogue"))
	assert.Equal(t, 1, metrics.CountCounterRecords("catalogue_rejections_total", map[string]string{"shop": "Shop1"}))
}

func Test_Shop_RecordSale_AccumulatesIncome(t *testing.T) {
	// arrange
	shop, err := bookshop.NewShop("Shop1")
	require.NoError(t, err)

	// act
	require.NoError(t, shop.RecordSale(decimal.NewFromInt(150)))
	require.NoError(t, shop.RecordSale(decimal.RequireFromString("49.95")))

	// assert
	assert.True(t, shop.Income().Equal(decimal.RequireFromString("199.95")))
}

func Test_Shop_RecordSale_RejectsNegativeAmount(t *testing.T) {
	// arrange
	shop, err := bookshop.NewShop("Shop1")
	require.NoError(t, err)

	// act
	recordErr := shop.RecordSale(decimal.NewFromInt(-10))

	// assert
	assert.ErrorIs(t, recordErr, bookshop.ErrNegativeAmount)
	assert.True(t, shop.Income().IsZero())
}

func Test_Shop_DistinctCatalogue(t *testing.T) {
	// arrange
	shop, err := bookshop.NewShop("Shop2")
	require.NoError(t, err)

	comic := testutil.ComicBook()
	require.NoError(t, shop.AddToCatalogue(comic))
	require.NoError(t, shop.AddToCatalogue(comic))

	// assert
	assert.Equal(t, 2, shop.CatalogueSize())
	assert.Len(t, shop.DistinctCatalogue(), 1)
}
