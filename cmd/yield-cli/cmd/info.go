// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/yieldvm/client"
)

var infoCmd = &cobra.Command{
	Use:   "info [options] <underlying> [expiry]",
	Short: "Shows asset metadata and, with an expiry, the registered pair",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%q is not a valid address", args[0])
	}
	underlying := common.HexToAddress(args[0])

	cli := client.New(uri, requestTimeout)
	asset, exists, err := cli.Asset(underlying)
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("asset %s is not registered", underlying.Hex())
		return nil
	}
	color.Cyan("asset %s: name=%q symbol=%q decimals=%d",
		underlying.Hex(), asset.Name, asset.Symbol, asset.Decimals)

	if len(args) == 1 {
		return nil
	}
	expiry, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse expiry: %w", err)
	}
	pt, found, err := cli.PrincipalToken(underlying, expiry)
	if err != nil {
		return err
	}
	if !found {
		color.Yellow("no pair registered for expiry %d", expiry)
		return nil
	}
	yt, _, err := cli.YieldToken(underlying, expiry)
	if err != nil {
		return err
	}
	color.Green("expiry %d: PT=%s YT=%s", expiry, pt.Hex(), yt.Hex())
	return nil
}
