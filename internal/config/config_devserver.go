package config

import (
	"fmt"
	"time"
)

// DevServerConfig configures the in-memory notes service used for local
// development and end-to-end tests.
type DevServerConfig struct {
	// Address is the listen address.
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:8080"`

	// MailDomain is appended to generated aliases.
	// Env: DEVSERVER_MAIL_DOMAIN
	MailDomain string `env:"MAIL_DOMAIN" envDefault:"notes.localhost"`

	// QuotaLimit is the number of notes an account may import per period.
	// Zero means unlimited.
	// Env: DEVSERVER_QUOTA_LIMIT
	QuotaLimit int64 `env:"QUOTA_LIMIT" envDefault:"50"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: DEVSERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// GetDevServerConfig reads [DevServerConfig] from DEVSERVER_* variables.
func GetDevServerConfig() (*DevServerConfig, error) {
	var wrapper struct {
		DevServer DevServerConfig `envPrefix:"DEVSERVER_"`
	}
	if err := parseEnv(&wrapper); err != nil {
		return nil, err
	}

	cfg := wrapper.DevServer
	if cfg.Address == "" || cfg.QuotaLimit < 0 {
		return nil, fmt.Errorf("%w: address %q, quota limit %d", ErrInvalidDevServerConfigs, cfg.Address, cfg.QuotaLimit)
	}
	return &cfg, nil
}
