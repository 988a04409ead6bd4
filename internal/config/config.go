// Package config loads site settings: built-in defaults, then an optional
// YAML file named by FSS_CONFIG, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr             string         `yaml:"addr"`
	DSN              string         `yaml:"dsn"`
	FixturesDir      string         `yaml:"fixtures_dir,omitempty"`
	SchoolName       string         `yaml:"school_name"`
	Timezone         string         `yaml:"timezone"`
	LookupDelay      time.Duration  `yaml:"lookup_delay"`
	AdmissionPattern string         `yaml:"admission_pattern"`
	TermOrder        map[string]int `yaml:"term_order,omitempty"`
	Telegram         Telegram       `yaml:"telegram"`
}

// Telegram configures forwarding of contact messages to the school office.
// Forwarding is off unless both fields are set.
type Telegram struct {
	Token  string `yaml:"token,omitempty"`
	ChatID int64  `yaml:"chat_id,omitempty"`
}

func (t Telegram) Enabled() bool { return t.Token != "" && t.ChatID != 0 }

func Default() *Config {
	return &Config{
		Addr:             ":8080",
		DSN:              "faithss.db?_journal_mode=WAL&_busy_timeout=5000",
		SchoolName:       "Faith Secondary School",
		Timezone:         "Africa/Lagos",
		LookupDelay:      time.Second,
		AdmissionPattern: `^[Ff][Ss]{2}\d{3}$`,
	}
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("FSS_CONFIG"); path != "" {
		if err := cfg.merge(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads path over the defaults, without consulting the environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) applyEnv() error {
	c.Addr = getEnv("ADDR", c.Addr)
	c.DSN = getEnv("FSS_DSN", c.DSN)
	c.FixturesDir = getEnv("FSS_FIXTURES", c.FixturesDir)
	c.Timezone = getEnv("FSS_TIMEZONE", c.Timezone)
	c.AdmissionPattern = getEnv("FSS_ADMISSION_PATTERN", c.AdmissionPattern)
	c.Telegram.Token = getEnv("TG_BOT_TOKEN", c.Telegram.Token)

	if v := os.Getenv("FSS_LOOKUP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FSS_LOOKUP_DELAY: %w", err)
		}
		c.LookupDelay = d
	}
	if v := os.Getenv("TG_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TG_CHAT_ID: %w", err)
		}
		c.Telegram.ChatID = id
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DSN == "" {
		return errors.New("dsn is required")
	}
	if c.LookupDelay < 0 {
		return errors.New("lookup_delay must not be negative")
	}
	if _, err := regexp.Compile(c.AdmissionPattern); err != nil {
		return fmt.Errorf("admission_pattern: %w", err)
	}
	return nil
}

// Location resolves Timezone, falling back to a fixed WAT zone when tzdata is
// missing.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("WAT", 3600)
	}
	return loc
}
