// Package config loads process configuration from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nexuscrm/formbridge/internal/infrastructure/airtable"
	"github.com/nexuscrm/formbridge/pkg/constants"
	appErrors "github.com/nexuscrm/formbridge/pkg/errors"
)

// Config is the full process configuration
type Config struct {
	Port       int
	Airtable   airtable.Config
	PolicyFile string
	LogLevel   string
	LogFile    string
}

// Addr is the listen address, bound to all interfaces
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", constants.DefaultBindHost, c.Port)
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then builds the Config from it. Variables already set
// in the environment win over file values; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, p := range envFiles {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:       constants.DefaultPort,
		PolicyFile: strings.TrimSpace(getenv(constants.EnvFormPolicyFile)),
		LogLevel:   strings.TrimSpace(getenv(constants.EnvLogLevel)),
		LogFile:    strings.TrimSpace(getenv(constants.EnvLogFile)),
		Airtable: airtable.Config{
			Token:       strings.TrimSpace(getenv(constants.EnvAirtableToken)),
			BaseID:      strings.TrimSpace(getenv(constants.EnvAirtableBaseID)),
			EndpointURL: strings.TrimSpace(getenv(constants.EnvAirtableEndpointURL)),
			Timeout:     airtable.DefaultTimeout,
			VerifyTLS:   true,
			CABundle:    strings.TrimSpace(getenv(constants.EnvAirtableCABundle)),
		},
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = constants.DefaultLogLevel
	}

	if cfg.Airtable.Token == "" {
		return nil, appErrors.NewConfigError(constants.EnvAirtableToken, "is required")
	}
	if cfg.Airtable.BaseID == "" {
		return nil, appErrors.NewConfigError(constants.EnvAirtableBaseID, "is required")
	}

	if portStr := strings.TrimSpace(getenv(constants.EnvPort)); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, appErrors.NewConfigError(constants.EnvPort, fmt.Sprintf("must be a TCP port, got %q", portStr))
		}
		cfg.Port = port
	}

	if t := strings.TrimSpace(getenv(constants.EnvAirtableTimeout)); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			return nil, appErrors.NewConfigError(constants.EnvAirtableTimeout, fmt.Sprintf("must be a positive duration, got %q", t))
		}
		cfg.Airtable.Timeout = d
	}

	if v := strings.TrimSpace(getenv(constants.EnvAirtableVerifySSL)); v != "" {
		verify, err := parseFlag(v)
		if err != nil {
			return nil, appErrors.NewConfigError(constants.EnvAirtableVerifySSL, err.Error())
		}
		cfg.Airtable.VerifyTLS = verify
	}

	return cfg, nil
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("must be a boolean, got %q", v)
}
