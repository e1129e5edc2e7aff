package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text or json
	} `yaml:"logging"`
	Book struct {
		Depth       int      `yaml:"depth"`
		DefaultPair string   `yaml:"default_pair"`
		Pairs       []string `yaml:"pairs"`
		Groupings   []string `yaml:"groupings"`
	} `yaml:"book"`
}

func defaultConfig() Config {
	var c Config
	c.Server.Addr = ":3000"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.Logging.Level = "info"
	c.Logging.Format = "text"
	c.Book.Depth = 10
	c.Book.DefaultPair = "USD"
	c.Book.Pairs = []string{"USD", "ETH", "BTC"}
	c.Book.Groupings = []string{"1", "2", "5", "10", "100", "1000"}
	return c
}

// Load builds the config from defaults, an optional YAML file named by
// BOOKVIEW_CONFIG and BOOKVIEW_* environment overrides. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := defaultConfig()
	if path := os.Getenv("BOOKVIEW_CONFIG"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("BOOKVIEW_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("BOOKVIEW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BOOKVIEW_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("BOOKVIEW_BOOK_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("BOOKVIEW_BOOK_DEPTH: %w", err)
		}
		c.Book.Depth = n
	}
	if v := os.Getenv("BOOKVIEW_DEFAULT_PAIR"); v != "" {
		c.Book.DefaultPair = v
	}
	if v := os.Getenv("BOOKVIEW_PAIRS"); v != "" {
		c.Book.Pairs = splitCSV(v)
	}
	if v := os.Getenv("BOOKVIEW_GROUPINGS"); v != "" {
		c.Book.Groupings = splitCSV(v)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Book.Depth <= 0 {
		return fmt.Errorf("book depth must be positive, got %d", c.Book.Depth)
	}
	if len(c.Book.Pairs) == 0 {
		return fmt.Errorf("at least one pair must be enabled")
	}
	if !c.PairEnabled(c.Book.DefaultPair) {
		return fmt.Errorf("default pair %q is not enabled", c.Book.DefaultPair)
	}
	return nil
}

// PairEnabled reports whether pair is in the enabled list, ignoring case.
func (c Config) PairEnabled(pair string) bool {
	for _, p := range c.Book.Pairs {
		if strings.EqualFold(p, pair) {
			return true
		}
	}
	return false
}

// GroupingAllowed reports whether g is one of the spread grouping options.
// An empty grouping is always allowed.
func (c Config) GroupingAllowed(g string) bool {
	if g == "" {
		return true
	}
	for _, v := range c.Book.Groupings {
		if v == g {
			return true
		}
	}
	return false
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
