// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &RegisterAssetTx{}

// RegisterAssetTx installs the metadata surface of an underlying
// yield-bearing asset. Pair creation for an address aborts until the
// address has been registered.
type RegisterAssetTx struct {
	Address  common.Address `serialize:"true" json:"address"`
	Name     string         `serialize:"true" json:"name"`
	Symbol   string         `serialize:"true" json:"symbol"`
	Decimals uint8          `serialize:"true" json:"decimals"`
}

func (r *RegisterAssetTx) Execute(tc *TransactionContext) error {
	if _, err := authorize(tc); err != nil {
		return err
	}
	if r.Address == zeroAddress {
		return ErrZeroAddress
	}
	if len(r.Symbol) == 0 {
		return ErrEmptySymbol
	}
	db := tc.Database
	if has, err := HasAsset(db, r.Address); err != nil {
		return err
	} else if has {
		return ErrAssetExists
	}

	// Give the asset a host account so it exists as an addressable
	// contract, not just a metadata record.
	if _, exists, err := GetAccount(db, r.Address); err != nil {
		return err
	} else if !exists {
		if err := SetAccount(db, r.Address, &Account{Nonce: 1}); err != nil {
			return err
		}
	}

	return SetAsset(db, r.Address, &Asset{
		Name:     r.Name,
		Symbol:   r.Symbol,
		Decimals: r.Decimals,
	})
}

func (r *RegisterAssetTx) Copy() UnsignedTransaction {
	return &RegisterAssetTx{
		Address:  r.Address,
		Name:     r.Name,
		Symbol:   r.Symbol,
		Decimals: r.Decimals,
	}
}

func (r *RegisterAssetTx) Activity() *Activity {
	return &Activity{
		Typ:        RegisterAsset,
		Underlying: r.Address.Hex(),
	}
}
