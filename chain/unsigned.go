// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// TransactionContext is the environment a single operation executes
// in. Database is a private overlay of the authoritative store; the
// executor commits it only if Execute returns nil.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	Deployer  *RawCodeDeployer
	BlockTime uint64
	TxID      ids.ID
	Sender    common.Address
}

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	Execute(*TransactionContext) error
	Activity() *Activity
}

func UnsignedBytes(utx UnsignedTransaction) ([]byte, error) {
	return Marshal(utx)
}
