package postgres

import (
	"strconv"

	"github.com/lib/pq"

	"offerte_api/config"
	"offerte_api/pkg/dbconnect"
	"offerte_api/pkg/logger"
)

const DriverName = "postgres"

type dialect struct{}

func (dialect) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (dialect) QuoteIdent(name string) string {
	return pq.QuoteIdentifier(name)
}

func Dialect() dbconnect.Dialect {
	return dialect{}
}

func NewPgConnector(dbConfig *config.DatabaseConfig, log logger.Logger) *dbconnect.SQLDatabase {
	return dbconnect.NewSQLDatabase(DriverName, dbConfig.GetConnectionString(), dialect{}, dbconnect.Options{
		MaxRetries:   dbConfig.ConnectRetries,
		RetryDelay:   dbConfig.RetryDelay,
		MaxOpenConns: dbConfig.MaxOpenConns,
	}, log)
}
