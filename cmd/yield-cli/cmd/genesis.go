// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/yieldvm/client"
)

var genesisCmd = &cobra.Command{
	Use:   "genesis [options]",
	Short: "Prints the VM genesis",
	RunE:  genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	cli := client.New(uri, requestTimeout)
	g, err := cli.Genesis()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
