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

var createCmd = &cobra.Command{
	Use:   "create [options] <underlying> <expiry>",
	Short: "Creates a yield contract pair for the given underlying asset and expiry",
	Long: `
Deploys a principal/yield token pair for a registered underlying asset
at the given expiry timestamp. The expiry must be in the future and an
exact multiple of the configured expiry divisor.

$ yield-cli create 0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B 1735689600
`,
	RunE: createFunc,
}

func createFunc(cmd *cobra.Command, args []string) error {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	underlying, expiry, err := getCreateOp(args)
	if err != nil {
		return err
	}

	cli := client.New(uri, requestTimeout)
	utx := &chain.CreateYieldContractTx{
		Underlying: underlying,
		Expiry:     expiry,
	}
	txID, a, err := client.SignIssueTx(cli, utx, priv)
	if err != nil {
		return err
	}
	color.Green("created pair in %s: PT=%s YT=%s", txID, a.PrincipalToken, a.YieldToken)
	return nil
}

func getCreateOp(args []string) (common.Address, uint64, error) {
	if len(args) != 2 {
		return common.Address{}, 0, fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return common.Address{}, 0, fmt.Errorf("%q is not a valid address", args[0])
	}
	expiry, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return common.Address{}, 0, fmt.Errorf("failed to parse expiry: %w", err)
	}
	return common.HexToAddress(args[0]), expiry, nil
}
