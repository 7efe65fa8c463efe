// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
)

// validate checks cross-field consistency of the merged [StructuredConfig].
// Missing values are not an error at this level; [ClientConfig.validate]
// enforces what the client actually needs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MinDelay < 0 || cfg.Workers.MaxDelay < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.MinDelay > 0 && cfg.Workers.MaxDelay > 0 && cfg.Workers.MaxDelay < cfg.Workers.MinDelay {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Vault.Root == "" || cfg.Storage.Vault.StagingFolder == "" {
		return ErrInvalidVaultConfigs
	}
	if filepath.IsAbs(cfg.Storage.Vault.StagingFolder) || strings.HasPrefix(filepath.Clean(cfg.Storage.Vault.StagingFolder), "..") {
		return ErrInvalidVaultConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.MinDelay <= 0 || cfg.Workers.MaxDelay < cfg.Workers.MinDelay {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
