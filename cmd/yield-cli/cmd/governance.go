// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/yieldvm/chain"
	"github.com/ava-labs/yieldvm/client"
)

var setDivisorCmd = &cobra.Command{
	Use:   "set-divisor [options] <divisor>",
	Short: "Updates the expiry divisor (governance only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueGovernanceOp(args, func(v uint64) chain.UnsignedTransaction {
			return &chain.SetExpiryDivisorTx{Divisor: v}
		})
	},
}

var setFeeCmd = &cobra.Command{
	Use:   "set-fee [options] <feeRate>",
	Short: "Updates the interest fee rate (governance only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return issueGovernanceOp(args, func(v uint64) chain.UnsignedTransaction {
			return &chain.SetInterestFeeRateTx{FeeRate: v}
		})
	},
}

var setTreasuryCmd = &cobra.Command{
	Use:   "set-treasury [options] <address>",
	Short: "Updates the treasury address (governance only)",
	RunE:  setTreasuryFunc,
}

func issueGovernanceOp(args []string, build func(uint64) chain.UnsignedTransaction) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	v, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	cli := client.New(uri, requestTimeout)
	txID, a, err := client.SignIssueTx(cli, build(v), priv)
	if err != nil {
		return err
	}
	color.Green("%s=%d committed in %s", a.Typ, a.Value, txID)
	return nil
}

func setTreasuryFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%q is not a valid address", args[0])
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.SetTreasuryTx{Treasury: common.HexToAddress(args[0])}
	txID, a, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return err
	}
	color.Green("treasury=%s committed in %s", a.To, txID)
	return nil
}
