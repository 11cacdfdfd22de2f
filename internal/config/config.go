package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir      string
	AccountsFile string
	OrdersDB     string
	LogLevel     string
	DefaultStock int
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		DataDir:      getenv("SHOP_DATA_DIR", "data"),
		AccountsFile: getenv("SHOP_ACCOUNTS_FILE", "accounts.txt"),
		LogLevel:     getenv("SHOP_LOG_LEVEL", "info"),
		DefaultStock: 10,
	}
	cfg.OrdersDB = getenv("SHOP_ORDERS_DB", filepath.Join(cfg.DataDir, "orders.db"))

	if v := os.Getenv("SHOP_DEFAULT_STOCK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Notice: invalid SHOP_DEFAULT_STOCK %q, keeping %d", v, cfg.DefaultStock)
		} else {
			cfg.DefaultStock = n
		}
	}

	return cfg, nil
}

// AccountsPath is where the credential store lives, inside the data directory.
func (c *Config) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsFile)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
