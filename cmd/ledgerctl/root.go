// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
)

const defaultAdapterTimeout = 30 * time.Second

var errPinRequired = errors.New("pin is required: use --pin or LEDGER_PIN")

// rootOptions are the persistent flags shared by every command. They are
// forwarded to the config layer as its own flags, so env and the JSON file
// keep working underneath.
type rootOptions struct {
	configPath string
	dsn        string
	masterKey  string
	server     string
	timeout    time.Duration
	verbose    bool

	timeoutSet bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate and query the encrypted budget ledger",
		Long: `ledgerctl seeds encrypted amounts, issues development tokens and
queries a running ledger server.

Configuration is read from the environment (.env is loaded), a JSON file
given by --config, and the flags below, in that order.`,
		Version:       models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.timeoutSet = cmd.Flags().Changed("timeout")
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	flags.StringVarP(&opts.dsn, "dsn", "d", "", "database DSN (seed)")
	flags.StringVar(&opts.masterKey, "master-key", "", "hex encoded encryption master key (seed)")
	flags.StringVarP(&opts.server, "server", "s", "", "ledger server URL")
	flags.DurationVar(&opts.timeout, "timeout", defaultAdapterTimeout, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs")

	cmd.AddCommand(
		newSeedCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(opts),
		newPeriodCmd(opts),
		newConsumptionCmd(opts),
		newSummaryCmd(opts),
		newAddTransactionCmd(opts),
		newChangePinCmd(opts),
	)

	return cmd
}

// configArgs renders the persistent flags as config layer arguments. Only
// flags with a value are passed so they do not mask env or JSON values.
func (o *rootOptions) configArgs() []string {
	var args []string
	if o.configPath != "" {
		args = append(args, "-c", o.configPath)
	}
	if o.dsn != "" {
		args = append(args, "-d", o.dsn)
	}
	if o.masterKey != "" {
		args = append(args, "-master-key", o.masterKey)
	}
	if o.server != "" {
		args = append(args, "-adapter-address", o.server)
	}
	if o.timeoutSet || os.Getenv("ADAPTER_REQUEST_TIMEOUT") == "" {
		args = append(args, "-adapter-timeout", o.timeout.String())
	}
	return args
}

func (o *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	return logger.NewCLILogger("ledgerctl", cmd.ErrOrStderr(), o.verbose)
}

// resolvePin prefers the flag value over LEDGER_PIN.
func resolvePin(flagValue string) (string, error) {
	pin := strings.TrimSpace(flagValue)
	if pin == "" {
		pin = strings.TrimSpace(os.Getenv("LEDGER_PIN"))
	}
	if pin == "" {
		return "", errPinRequired
	}
	return pin, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
