// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Contract addresses are derived with the native create rule: the
// Keccak-256 hash of the RLP encoding of [deployer, nonce], truncated
// to the low 20 bytes.
//
// Only the subset of RLP needed for that pair is implemented here. The
// encoded payload is at most 21 bytes of address + 33 bytes of nonce,
// so the short-form list encoding always suffices.

// rlpBytes encodes a byte string per the minimal RLP rules.
func rlpBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append([]byte{0x80 + byte(len(b))}, b...)
}

// rlpUint encodes a non-negative integer as its minimal big-endian
// byte representation. Zero encodes as the empty byte string.
func rlpUint(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x80}
	}
	return rlpBytes(n.Bytes())
}

func rlpList(items ...[]byte) []byte {
	size := 0
	for _, it := range items {
		size += len(it)
	}
	b := make([]byte, 1, 1+size)
	b[0] = 0xc0 + byte(size)
	for _, it := range items {
		b = append(b, it...)
	}
	return b
}

// CreateAddress returns the address a create-style deployment from
// [deployer] produces at sequence number [nonce]. The result is pure:
// the same inputs always derive the same address.
func CreateAddress(deployer common.Address, nonce *big.Int) common.Address {
	enc := rlpList(rlpBytes(deployer.Bytes()), rlpUint(nonce))
	return common.BytesToAddress(crypto.Keccak256(enc)[12:])
}

// CreateAddressUint64 is CreateAddress for the nonce widths the host
// actually tracks.
func CreateAddressUint64(deployer common.Address, nonce uint64) common.Address {
	return CreateAddress(deployer, new(big.Int).SetUint64(nonce))
}
