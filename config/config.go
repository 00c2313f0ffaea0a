// Package config loads client settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/i18n"
)

// Environment overrides
const (
	EnvTrust    = "POLLY_TRUST_API_RESPONSES"
	EnvLogLevel = "POLLY_LOG_LEVEL"
	EnvLanguage = "POLLY_LANGUAGE"
)

// Config holds the client settings models care about.
type Config struct {
	// Trust tolerates malformed responses (logged) instead of
	// rejecting them.
	Trust    bool      `yaml:"trust_api_responses"`
	Language string    `yaml:"language"`
	Log      LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

var _ pollyskema.Client = Config{}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Trust:    true,
		Language: "en",
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// TrustAPIResponses implements pollyskema.Client.
func (c Config) TrustAPIResponses() bool { return c.Trust }

// Load reads a YAML file over Default. Keys missing from the file keep their
// default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(string) (string, bool)

// FromEnv applies environment overrides to c.
func FromEnv(c Config, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvTrust); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("config: %s: %w", EnvTrust, err)
		}
		c.Trust = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		c.Language = strings.TrimSpace(v)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// ApplyLogging configures l from c.Log.
func (c Config) ApplyLogging(l *log.Logger) error {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	l.SetLevel(lvl)
	if c.Log.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// Install registers c as the process-wide client, selects the message
// language and routes model logs to l (the logrus standard logger when nil).
func (c Config) Install(l *log.Logger) error {
	if l == nil {
		l = log.StandardLogger()
	}
	if err := c.ApplyLogging(l); err != nil {
		return err
	}
	i18n.SetLanguage(c.Language)
	pollyskema.SetLogger(l.WithField("component", "pollyskema"))
	pollyskema.SetCurrent(c)
	return nil
}
