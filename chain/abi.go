// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Both instrument constructors share the same signature:
// (underlying, pair, name, symbol, decimals, expiry).
var instrumentArgs abi.Arguments

func init() {
	instrumentArgs = abi.Arguments{
		{Type: mustNewType("address")},
		{Type: mustNewType("address")},
		{Type: mustNewType("string")},
		{Type: mustNewType("string")},
		{Type: mustNewType("uint8")},
		{Type: mustNewType("uint256")},
	}
}

func mustNewType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return ty
}

// PackInstrumentArgs ABI-encodes the constructor arguments appended to
// an instrument's creation code.
func PackInstrumentArgs(
	underlying common.Address,
	pair common.Address,
	name string,
	symbol string,
	decimals uint8,
	expiry uint64,
) ([]byte, error) {
	return instrumentArgs.Pack(
		underlying,
		pair,
		name,
		symbol,
		decimals,
		new(big.Int).SetUint64(expiry),
	)
}
