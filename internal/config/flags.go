// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and a port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a config.
//
// Flags:
//
//	-a               server address in format [host]:[port]
//	-d               database DSN
//	-c, -config      json file path with configs
//	-master-key      hex encoded encryption master key
//	-kdf-iterations  PBKDF2 iterations for new users
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token duration (e.g. "1h", "30m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-adapter-address server URL used by ledgerctl
//	-adapter-timeout request timeout used by ledgerctl
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		databaseDSN    string
		jsonConfigPath string
		masterKey      string
		kdfIterations  int
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		adapterAddress string
		adapterTimeout time.Duration
	)

	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterKey, "master-key", "", "Hex encoded encryption master key")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations for new users")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Server URL used by clients")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			EncryptionMasterKey: masterKey,
			KDFIterations:       kdfIterations,
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", an IP address or
// empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
