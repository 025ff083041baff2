package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RateLimit is requests per second across the whole server, 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// SourcesConfig names the three relations joined by SKU.
type SourcesConfig struct {
	ProductsTable  string `yaml:"products_table"`
	StockTable     string `yaml:"stock_table"`
	SalesUnitTable string `yaml:"sales_unit_table"`
	NameColumn     string `yaml:"name_column"`
	StockColumn    string `yaml:"stock_column"`
}

type ProductsConfig struct {
	Envelope bool `yaml:"envelope"`
	SkuWidth int  `yaml:"sku_width"`
}

type QuotationConfig struct {
	MaxItems int     `yaml:"max_items"`
	CdcCost  float64 `yaml:"cdc_cost"`
	Title    string  `yaml:"title"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Sources   SourcesConfig   `yaml:"sources"`
	Products  ProductsConfig  `yaml:"products"`
	Quotation QuotationConfig `yaml:"quotation"`
	Log       LogConfig       `yaml:"log"`
}

func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            ":8081",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           "5432",
			User:           "postgres",
			Password:       "postgres",
			DBName:         "postgres",
			SSLMode:        "disable",
			ConnectRetries: 10,
			RetryDelay:     5 * time.Second,
			MaxOpenConns:   20,
		},
		Sources: SourcesConfig{
			ProductsTable:  "business",
			StockTable:     "storage_stock_update",
			SalesUnitTable: "storage_article_price",
			NameColumn:     "PRODUCT_NAME_H1.nl_BE",
			StockColumn:    "LAST_STATE@IMH_HAS",
		},
		Products: ProductsConfig{
			Envelope: true,
		},
		Quotation: QuotationConfig{
			MaxItems: 5,
			CdcCost:  -5.45,
			Title:    "OFFERTE",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig decodes a YAML file on top of the defaults.
func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := Default()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return config, nil
}

// Load reads .env (if any), the optional YAML file and the environment, in that order.
func Load(filename string) (*AppConfig, error) {
	_ = godotenv.Load()

	config := Default()
	if filename != "" {
		var err error
		if config, err = LoadConfig(filename); err != nil {
			return nil, err
		}
	}
	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c *AppConfig) applyEnvOverrides() {
	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Database.applyEnvOverrides()
}

func (c *AppConfig) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if c.Sources.ProductsTable == "" || c.Sources.StockTable == "" || c.Sources.SalesUnitTable == "" {
		errs = append(errs, errors.New("all source tables must be named"))
	}
	if c.Sources.NameColumn == "" || c.Sources.StockColumn == "" {
		errs = append(errs, errors.New("name and stock columns must be named"))
	}
	if c.Products.SkuWidth < 0 {
		errs = append(errs, errors.New("products.sku_width must not be negative"))
	}
	if c.Quotation.MaxItems <= 0 {
		errs = append(errs, errors.New("quotation.max_items must be positive"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("server.rate_limit must not be negative"))
	}
	return errors.Join(errs...)
}
