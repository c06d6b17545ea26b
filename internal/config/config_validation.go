// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", ErrInvalidAppConfigs)
	}
	if _, ok := supportedAlgorithms[cfg.App.Algorithm]; !ok {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidAppConfigs, cfg.App.Algorithm)
	}
	if cfg.App.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("%w: token lifetime must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database URL is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Seed.Enabled && (cfg.Seed.Email == "" || cfg.Seed.Password == "") {
		return ErrInvalidSeedConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidClientConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
