// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name of a scalar field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional JSON config file merged last.
	JSONFilePath string `env:"CONFIG"`
}

// App holds key material and token settings.
type App struct {
	// EncryptionMasterKey is the hex encoded 32-byte server master key mixed
	// into every data encryption key.
	// Env: APP_ENCRYPTION_MASTER_KEY
	EncryptionMasterKey string `env:"ENCRYPTION_MASTER_KEY"`

	// KDFIterations is the PBKDF2 iteration count stored for new users.
	// Zero means the built-in default.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// TokenSignKey verifies (and, for ledgerctl token, signs) HS256 JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens issued by ledgerctl.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/v1/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN is a postgres:// URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings ledgerctl uses to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetServerConfig loads the configuration of the HTTP server from env, args
// and the JSON file. App, Storage and Server groups must be valid.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build(validateApp, validateStorage, validateServer)
}

// GetSeedConfig loads the configuration of `ledgerctl seed`, which talks to
// the database directly and needs the master key.
func GetSeedConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build(validateApp, validateStorage)
}

// GetStructuredConfig loads the configuration without validating any group.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
