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

var registerAssetCmd = &cobra.Command{
	Use:   "register-asset [options] <address> <name> <symbol> <decimals>",
	Short: "Registers an underlying asset's metadata (governance only)",
	Long: `
$ yield-cli register-asset 0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B "Wrapped Ether" WETH 18
`,
	RunE: registerAssetFunc,
}

func registerAssetFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("expected exactly 4 arguments, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%q is not a valid address", args[0])
	}
	decimals, err := strconv.ParseUint(args[3], 10, 8)
	if err != nil {
		return fmt.Errorf("failed to parse decimals: %w", err)
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.RegisterAssetTx{
		Address:  common.HexToAddress(args[0]),
		Name:     args[1],
		Symbol:   args[2],
		Decimals: uint8(decimals),
	}
	txID, _, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return err
	}
	color.Green("registered asset %s (%s) in %s", args[2], args[0], txID)
	return nil
}
