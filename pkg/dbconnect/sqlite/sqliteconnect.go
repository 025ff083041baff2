// Package sqlite connects to SQLite files through the pure-Go modernc driver.
// It backs local runs and the package tests.
package sqlite

import (
	"strings"

	_ "modernc.org/sqlite"

	"offerte_api/config"
	"offerte_api/pkg/dbconnect"
	"offerte_api/pkg/logger"
)

const DriverName = "sqlite"

type dialect struct{}

func (dialect) Placeholder(int) string {
	return "?"
}

func (dialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func Dialect() dbconnect.Dialect {
	return dialect{}
}

func NewSqliteConnector(dbConfig *config.DatabaseConfig, log logger.Logger) *dbconnect.SQLDatabase {
	return dbconnect.NewSQLDatabase(DriverName, dbConfig.GetConnectionString(), dialect{}, dbconnect.Options{
		MaxRetries:   dbConfig.ConnectRetries,
		RetryDelay:   dbConfig.RetryDelay,
		MaxOpenConns: dbConfig.MaxOpenConns,
	}, log)
}
