// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// Pair is a registered (principal, yield) instrument pair. Once
// written for an (underlying, expiry) key it is never modified.
type Pair struct {
	PrincipalToken common.Address `serialize:"true" json:"principalToken"`
	YieldToken     common.Address `serialize:"true" json:"yieldToken"`
}

func PairKey(underlying common.Address, expiry uint64) []byte {
	b := append([]byte{registryPrefix, ByteDelimiter}, underlying.Bytes()...)
	b = append(b, ByteDelimiter)
	e := make([]byte, 8)
	binary.BigEndian.PutUint64(e, expiry)
	return append(b, e...)
}

func ptKey(addr common.Address) []byte {
	return append([]byte{ptPrefix, ByteDelimiter}, addr.Bytes()...)
}

func ytKey(addr common.Address) []byte {
	return append([]byte{ytPrefix, ByteDelimiter}, addr.Bytes()...)
}

func GetPair(db database.Database, underlying common.Address, expiry uint64) (*Pair, bool, error) {
	v, err := db.Get(PairKey(underlying, expiry))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p Pair
	if _, err := Unmarshal(v, &p); err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func HasPair(db database.Database, underlying common.Address, expiry uint64) (bool, error) {
	return db.Has(PairKey(underlying, expiry))
}

// SetPair commits a pair into the registry and marks both addresses in
// the membership sets.
func SetPair(db database.Database, underlying common.Address, expiry uint64, p *Pair) error {
	v, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := db.Put(PairKey(underlying, expiry), v); err != nil {
		return err
	}
	if err := db.Put(ptKey(p.PrincipalToken), nil); err != nil {
		return err
	}
	return db.Put(ytKey(p.YieldToken), nil)
}

// IsPrincipalToken reports whether [addr] was deployed by the factory
// as a principal token.
func IsPrincipalToken(db database.Database, addr common.Address) (bool, error) {
	return db.Has(ptKey(addr))
}

// IsYieldToken reports whether [addr] was deployed by the factory as a
// yield token.
func IsYieldToken(db database.Database, addr common.Address) (bool, error) {
	return db.Has(ytKey(addr))
}
