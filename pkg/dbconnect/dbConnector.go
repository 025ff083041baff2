package dbconnect

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"offerte_api/pkg/logger"
)

const (
	defaultMaxRetries   = 10
	defaultMaxOpenConns = 20
	defaultRetryDelay   = 5 * time.Second
)

type Options struct {
	MaxRetries   int
	RetryDelay   time.Duration
	MaxOpenConns int
}

// SQLDatabase lazily opens one *sql.DB and keeps it for the process lifetime.
type SQLDatabase struct {
	driver  string
	dsn     string
	dialect Dialect
	opts    Options
	log     logger.Logger

	db *sql.DB
	mu sync.Mutex
}

func NewSQLDatabase(driver, dsn string, dialect Dialect, opts Options, log logger.Logger) *SQLDatabase {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RetryDelay < 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = defaultMaxOpenConns
	}
	if log == nil {
		log = logger.NewLogger(nil, "")
	}
	return &SQLDatabase{driver: driver, dsn: dsn, dialect: dialect, opts: opts, log: log}
}

func (d *SQLDatabase) Connect() (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		return d.db, nil
	}

	var err error
	for i := 0; i < d.opts.MaxRetries; i++ {
		var db *sql.DB
		db, err = sql.Open(d.driver, d.dsn)
		if err != nil {
			d.log.Log("Failed to open %s (attempt %d/%d): %v", d.driver, i+1, d.opts.MaxRetries, err)
			time.Sleep(d.opts.RetryDelay)
			continue
		}

		db.SetMaxOpenConns(d.opts.MaxOpenConns)

		if err = db.Ping(); err != nil {
			d.log.Log("Failed to ping %s (attempt %d/%d): %v", d.driver, i+1, d.opts.MaxRetries, err)
			db.Close()
			time.Sleep(d.opts.RetryDelay)
			continue
		}

		d.log.Log("Successfully connected to %s: %s", d.driver, redact(d.dsn))
		d.db = db
		return d.db, nil
	}
	return nil, fmt.Errorf("connect to %s after %d attempts: %w", d.driver, d.opts.MaxRetries, err)
}

func (d *SQLDatabase) Ping() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return fmt.Errorf("database connection is not established")
	}
	if err := d.db.Ping(); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func (d *SQLDatabase) Dialect() Dialect {
	return d.dialect
}

func (d *SQLDatabase) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// redact hides password values in key=value and URL style DSNs.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		rest := dsn[i+3:]
		if at := strings.Index(rest, "@"); at >= 0 {
			if colon := strings.Index(rest[:at], ":"); colon >= 0 {
				return dsn[:i+3] + rest[:colon] + ":***" + rest[at:]
			}
		}
		return dsn
	}
	return passwordField.ReplaceAllString(dsn, "${1}***")
}

// passwordField matches a password=value pair, value bare or single-quoted with escapes.
var passwordField = regexp.MustCompile(`(password\s*=\s*)('(?:[^'\\]|\\.)*'|\S*)`)
