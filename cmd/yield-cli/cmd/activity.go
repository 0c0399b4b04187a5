// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/yieldvm/client"
)

var activityLimit uint64

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "Prints recent factory activity",
	RunE:  activityFunc,
}

func init() {
	activityCmd.Flags().Uint64Var(&activityLimit, "limit", 16, "maximum number of records to print")
}

func activityFunc(cmd *cobra.Command, args []string) error {
	cli := client.New(uri, requestTimeout)
	activity, err := cli.RecentActivity(activityLimit)
	if err != nil {
		return err
	}
	for _, a := range activity {
		color.Cyan("[%d] %s sender=%s underlying=%s expiry=%d pt=%s yt=%s value=%d to=%s",
			a.Tmstmp, a.Typ, a.Sender, a.Underlying, a.Expiry, a.PrincipalToken, a.YieldToken, a.Value, a.To)
	}
	return nil
}
