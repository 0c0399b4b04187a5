// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// Create performs a create-style deployment of [payload] on behalf of
// [deployer] and returns the address of the installed account.
//
// The host keeps its own sequence bookkeeping in the deployer's account
// record: sequence 1 is consumed by the account's own creation, so the
// first child deploys at sequence 2. The factory's deployment counter
// mirrors this rule independently, which is what makes the
// predict-then-verify step in pair creation meaningful.
func Create(db database.Database, deployer common.Address, payload []byte) (common.Address, error) {
	if len(payload) == 0 {
		return common.Address{}, ErrEmptyPayload
	}

	acct, exists, err := GetAccount(db, deployer)
	if err != nil {
		return common.Address{}, err
	}
	if !exists {
		acct = &Account{Nonce: 1}
	}
	acct.Nonce++
	addr := CreateAddressUint64(deployer, acct.Nonce)

	// A collision here means the derivation inputs repeated, which the
	// monotonic nonce rules out. Reject rather than overwrite.
	if _, occupied, err := GetAccount(db, addr); err != nil {
		return common.Address{}, err
	} else if occupied {
		return common.Address{}, ErrAddressOccupied
	}

	if err := SetAccount(db, deployer, acct); err != nil {
		return common.Address{}, err
	}
	child := &Account{
		Nonce:   1,
		Code:    payload,
		Creator: deployer,
	}
	if err := SetAccount(db, addr, child); err != nil {
		return common.Address{}, err
	}
	return addr, nil
}
