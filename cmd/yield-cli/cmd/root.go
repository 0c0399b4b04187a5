// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cmd implements "yield-cli" commands.
package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	uri            string
	requestTimeout time.Duration
	privateKeyFile string

	rootCmd = &cobra.Command{
		Use:        "yield-cli",
		Short:      "YieldVM CLI",
		SuggestFor: []string{"yield-cli", "yieldcli", "yieldctl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		registerAssetCmd,
		setDivisorCmd,
		setFeeCmd,
		setTreasuryCmd,
		infoCmd,
		activityCmd,
		genesisCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9090",
		"RPC endpoint for VM",
	)
	rootCmd.PersistentFlags().DurationVar(
		&requestTimeout,
		"request-timeout",
		30*time.Second,
		"set it to 0 to not wait for transaction settlement",
	)
	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".yield-cli-pk",
		"private key file path",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
