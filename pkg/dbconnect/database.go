package dbconnect

import "database/sql"

type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
	Dialect() Dialect
	Close() error
}

// Dialect covers the few spots where generated SQL differs between drivers.
type Dialect interface {
	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string
	QuoteIdent(name string) string
}
