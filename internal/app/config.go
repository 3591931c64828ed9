package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "config.yaml"

// Credential store kinds accepted in Config.Credentials.
const (
	CredentialsPassthrough = "passthrough"
	CredentialsPassphrase  = "passphrase"
	CredentialsKeychain    = "keychain"
)

// Codec names accepted in Config.Codec.
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string `yaml:"-"`           // config directory, e.g. $HOME/.roster
	Passphrase  string `yaml:"-"`           // required for the passphrase store
	Store       string `yaml:"store"`       // account store name
	Credentials string `yaml:"credentials"` // passthrough | passphrase | keychain
	Codec       string `yaml:"codec"`       // json | msgpack
	LogLevel    string `yaml:"log_level"`   // debug | info | warn | error
	Audit       bool   `yaml:"audit"`       // write <home>/audit.log
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:        home,
		Store:       "accounts",
		Credentials: CredentialsPassthrough,
		Codec:       CodecJSON,
		LogLevel:    "warn",
		Audit:       true,
	}
}

// DefaultHome returns ~/.roster.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".roster"), nil
}

// LoadConfig reads <home>/config.yaml over the defaults. A missing file is
// not an error; keys absent from the file keep their default.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", configFile, err)
	}
	cfg.Home = home
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Store == "" {
		return errors.New("store name required")
	}
	switch c.Credentials {
	case CredentialsPassthrough, CredentialsPassphrase, CredentialsKeychain:
	default:
		return fmt.Errorf("unknown credential store %q", c.Credentials)
	}
	switch c.Codec {
	case CodecJSON, CodecMsgpack:
	default:
		return fmt.Errorf("unknown codec %q", c.Codec)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
