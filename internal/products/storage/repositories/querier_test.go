package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"offerte_api/pkg/dbconnect/postgres"
	"offerte_api/pkg/dbconnect/sqlite"
)

func TestSelectBySKU(t *testing.T) {
	assert.Equal(t,
		`SELECT "SKU", "LAST_STATE@IMH_HAS" FROM "storage_stock_update" WHERE "SKU" IN ($1, $2, $3)`,
		selectBySKU(postgres.Dialect(), "storage_stock_update", []string{"SKU", "LAST_STATE@IMH_HAS"}, 3))

	assert.Equal(t,
		`SELECT "SKU" FROM "erp"."business" WHERE "SKU" IN (?, ?)`,
		selectBySKU(sqlite.Dialect(), "erp.business", []string{"SKU"}, 2))
}
