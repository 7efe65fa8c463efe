package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

const (
	defaultAddress        = "https://localhost:8443"
	defaultRequestTimeout = 30 * time.Second
	defaultMinDelay       = 30 * time.Second
	defaultMaxDelay       = 30 * time.Minute
	defaultStagingFolder  = "Mail Notes"
	defaultKeyringService = "go-mail-notes"
	defaultVersion        = "dev"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func defaultConfig() *StructuredConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".go-mail-notes")

	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
			LogFile: filepath.Join(base, "client.log"),
		},
		Storage: Storage{
			DB:    DB{DSN: filepath.Join(base, "state.db")},
			Vault: Vault{Dir: filepath.Join(home, "Notes"), StagingFolder: defaultStagingFolder},
			Keyring: Keyring{
				ServiceName: defaultKeyringService,
				FileDir:     filepath.Join(base, "keyring"),
			},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			MinDelay: defaultMinDelay,
			MaxDelay: defaultMaxDelay,
		},
	}
}
