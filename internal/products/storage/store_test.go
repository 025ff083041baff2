package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerte_api/internal/products/storage/storagetest"
	"offerte_api/pkg/dbconnect/sqlite"
)

func TestSessionLookups(t *testing.T) {
	db := storagetest.Open(t, storagetest.Fixture{
		Products:   []storagetest.Product{{SKU: "A", Price: 10}},
		Stocks:     []storagetest.Stock{{SKU: "A", Stock: 5}, {SKU: "B", Stock: 3}},
		SalesUnits: []storagetest.SalesUnit{{SKU: "B", SalesQuantity: 6, UOM: "DS"}},
	})
	store := NewStore(db, sqlite.Dialect(), storagetest.Tables, time.Second)

	ctx := context.Background()
	session, err := store.Open(ctx)
	require.NoError(t, err)

	products, err := session.Products(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	stocks, err := session.Stocks(ctx, []string{"A", "B"})
	require.NoError(t, err)
	assert.Len(t, stocks, 2)

	units, err := session.SalesUnits(ctx, []string{"A", "B"})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "DS", units[0].UOM.String)

	require.NoError(t, session.Close())
	assert.Equal(t, 0, db.Stats().InUse)

	_, err = session.Products(ctx, []string{"A"})
	assert.Error(t, err, "closed session")
}
