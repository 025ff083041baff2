package dbconnect_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerte_api/config"
	"offerte_api/pkg/dbconnect/postgres"
	"offerte_api/pkg/dbconnect/sqlite"
)

func TestDialects(t *testing.T) {
	pg := postgres.Dialect()
	assert.Equal(t, "$3", pg.Placeholder(3))
	assert.Equal(t, `"PRODUCT_NAME_H1.nl_BE"`, pg.QuoteIdent("PRODUCT_NAME_H1.nl_BE"))

	lite := sqlite.Dialect()
	assert.Equal(t, "?", lite.Placeholder(3))
	assert.Equal(t, `"LAST_STATE@IMH_HAS"`, lite.QuoteIdent("LAST_STATE@IMH_HAS"))
	assert.Equal(t, `"a""b"`, lite.QuoteIdent(`a"b`))
}

func TestSqliteConnector(t *testing.T) {
	dbConfig := config.Default().Database
	dbConfig.Driver = sqlite.DriverName
	dbConfig.DSN = filepath.Join(t.TempDir(), "products.db")
	dbConfig.ConnectRetries = 1

	conn := sqlite.NewSqliteConnector(&dbConfig, nil)
	assert.Error(t, conn.Ping(), "ping before connect")

	db, err := conn.Connect()
	require.NoError(t, err)
	again, err := conn.Connect()
	require.NoError(t, err)
	assert.Same(t, db, again)

	require.NoError(t, conn.Ping())
	require.NoError(t, conn.Close())
	assert.Error(t, conn.Ping())
	assert.NoError(t, conn.Close())
}

func TestPgConnectorGivesUp(t *testing.T) {
	dbConfig := config.Default().Database
	dbConfig.DSN = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"
	dbConfig.ConnectRetries = 1
	dbConfig.RetryDelay = 0

	_, err := postgres.NewPgConnector(&dbConfig, nil).Connect()
	assert.ErrorContains(t, err, "after 1 attempts")
}
