// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	log "github.com/inconshreveable/log15"
)

// Executor runs one operation at a time with commit-or-abort
// semantics: every write an operation makes lands on a versiondb
// overlay that only reaches the base store if the whole operation
// succeeds.
type Executor struct {
	genesis  *Genesis
	deployer *RawCodeDeployer
}

func NewExecutor(genesis *Genesis, deployer *RawCodeDeployer) *Executor {
	return &Executor{
		genesis:  genesis,
		deployer: deployer,
	}
}

// Execute applies [tx] to [base] at [blockTime]. On success the
// committed activity record is returned; on any failure the base store
// is untouched.
func (e *Executor) Execute(base database.Database, tx *Transaction, blockTime uint64) (*Activity, error) {
	vdb := versiondb.New(base)
	defer vdb.Abort()

	tc := &TransactionContext{
		Genesis:   e.genesis,
		Database:  vdb,
		Deployer:  e.deployer,
		BlockTime: blockTime,
		TxID:      tx.ID(),
		Sender:    tx.Sender(),
	}
	if err := tx.Execute(tc); err != nil {
		log.Debug("tx aborted", "txId", tx.ID(), "err", err)
		return nil, err
	}

	a := tx.Activity()
	a.Tmstmp = int64(blockTime)
	a.TxID = tx.ID()
	a.Sender = tx.Sender().Hex()
	if err := PutActivity(vdb, a); err != nil {
		return nil, err
	}

	if err := vdb.Commit(); err != nil {
		return nil, err
	}
	log.Debug("tx committed", "txId", tx.ID(), "type", a.Typ)
	return a, nil
}
