package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is read when no --config flag is given.
const DefaultConfigFile = "quizadmin.toml"

// Config holds runtime wiring options for the server and the CLI.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
	Client  ClientConfig  `toml:"client"`

	HTTP *http.Client `toml:"-"` // optional; defaults to http.DefaultClient
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Addr string `toml:"addr"` // e.g. :3001
}

// StoreConfig locates the JSON document.
type StoreConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"` // broadcast edits made outside the API
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `toml:"level"` // debug, info, warn, error
	Development bool   `toml:"development"`
}

// ClientConfig holds the API base URL used by client commands.
type ClientConfig struct {
	BaseURL string `toml:"base_url"` // e.g. http://localhost:3001/api
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() Config {
	return Config{
		Server:  ServerConfig{Addr: ":3001"},
		Store:   StoreConfig{Path: "db.json", Watch: true},
		Logging: LoggingConfig{Level: "info"},
		Client:  ClientConfig{BaseURL: "http://localhost:3001/api"},
	}
}

// LoadFile overlays the TOML file at path onto c. A missing file is not an
// error; unknown keys are.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv applies QUIZADMIN_* environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("QUIZADMIN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("QUIZADMIN_STORE"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("QUIZADMIN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("QUIZADMIN_API_URL"); v != "" {
		c.Client.BaseURL = v
	}
}

// Load builds a Config from defaults, the TOML file at path and the
// environment, in that order of precedence (lowest first).
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}
	if err := cfg.LoadFile(path); err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}
