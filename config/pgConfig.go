package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type DbConfig interface {
	GetDriver() string
	GetConnectionString() string
}

// DatabaseConfig carries the DSN. When DSN is empty it is assembled from the Postgres fields.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`

	ConnectRetries int           `yaml:"connect_retries"`
	RetryDelay     time.Duration `yaml:"retry_delay"`
	MaxOpenConns   int           `yaml:"max_open_conns"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
}

func (dc *DatabaseConfig) GetDriver() string {
	return dc.Driver
}

func (dc *DatabaseConfig) GetConnectionString() string {
	if dc.DSN != "" {
		return dc.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(dc.Host), quoteDSNValue(dc.Port), quoteDSNValue(dc.User),
		quoteDSNValue(dc.Password), quoteDSNValue(dc.DBName), quoteDSNValue(dc.SSLMode))
}

// quoteDSNValue wraps v in single quotes with backslash and quote escaped, as libpq expects
// for empty values or values containing spaces.
func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func (dc *DatabaseConfig) applyEnvOverrides() {
	dc.Driver = getEnv("DB_DRIVER", dc.Driver)
	dc.DSN = getEnv("DB_DSN", dc.DSN)
	dc.Host = getEnv("POSTGRES_HOST", dc.Host)
	dc.Port = getEnv("POSTGRES_PORT", dc.Port)
	dc.User = getEnv("POSTGRES_USER", dc.User)
	dc.Password = getEnv("POSTGRES_PASSWORD", dc.Password)
	dc.DBName = getEnv("POSTGRES_NAME", dc.DBName)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
