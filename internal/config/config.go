package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Page names accepted in the pages setting, in display order.
const (
	PageBasic      = "basic"
	PageDetails    = "details"
	PageProperties = "properties"
)

// AllPages returns every page name in display order.
func AllPages() []string {
	return []string{PageBasic, PageDetails, PageProperties}
}

// Config holds all runtime configuration for a periodic session.
// Values are populated from .periodic.yaml, PERIODIC_* env vars, and CLI flags.
type Config struct {
	DataFile    string   `mapstructure:"data_file"`
	Locale      string   `mapstructure:"locale"`
	LocaleFile  string   `mapstructure:"locale_file"`
	HistoryFile string   `mapstructure:"history_file"`
	Color       bool     `mapstructure:"color"`
	Verbose     bool     `mapstructure:"verbose"`
	Pages       []string `mapstructure:"pages"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_file", "")
	viper.SetDefault("locale", "zh-Hans")
	viper.SetDefault("locale_file", "")
	viper.SetDefault("history_file", "")
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("pages", AllPages())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: locale %q is not a valid language tag: %w", c.Locale, err)
	}
	for i, p := range c.Pages {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case PageBasic, PageDetails, PageProperties:
			c.Pages[i] = p
		default:
			return fmt.Errorf("config: unknown page %q (want %s, %s or %s)", p, PageBasic, PageDetails, PageProperties)
		}
	}
	return nil
}
