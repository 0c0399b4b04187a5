// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

var (
	_ UnsignedTransaction = &SetExpiryDivisorTx{}
	_ UnsignedTransaction = &SetInterestFeeRateTx{}
	_ UnsignedTransaction = &SetTreasuryTx{}
)

var zeroAddress = common.Address{}

func authorize(tc *TransactionContext) (*Config, error) {
	cfg, err := GetConfig(tc.Database)
	if err != nil {
		return nil, err
	}
	if tc.Sender != cfg.Governance {
		return nil, ErrUnauthorized
	}
	return cfg, nil
}

// SetExpiryDivisorTx updates the divisor every new expiry must be an
// exact multiple of.
type SetExpiryDivisorTx struct {
	Divisor uint64 `serialize:"true" json:"divisor"`
}

func (s *SetExpiryDivisorTx) Execute(tc *TransactionContext) error {
	cfg, err := authorize(tc)
	if err != nil {
		return err
	}
	if s.Divisor == 0 {
		return ErrZeroDivisor
	}
	cfg.ExpiryDivisor = s.Divisor
	return SetConfig(tc.Database, cfg)
}

func (s *SetExpiryDivisorTx) Copy() UnsignedTransaction {
	return &SetExpiryDivisorTx{Divisor: s.Divisor}
}

func (s *SetExpiryDivisorTx) Activity() *Activity {
	return &Activity{
		Typ:   SetExpiryDivisor,
		Value: s.Divisor,
	}
}

// SetInterestFeeRateTx updates the fee rate consumed by deployed
// instruments. Any value is accepted.
type SetInterestFeeRateTx struct {
	FeeRate uint64 `serialize:"true" json:"feeRate"`
}

func (s *SetInterestFeeRateTx) Execute(tc *TransactionContext) error {
	cfg, err := authorize(tc)
	if err != nil {
		return err
	}
	cfg.InterestFeeRate = s.FeeRate
	return SetConfig(tc.Database, cfg)
}

func (s *SetInterestFeeRateTx) Copy() UnsignedTransaction {
	return &SetInterestFeeRateTx{FeeRate: s.FeeRate}
}

func (s *SetInterestFeeRateTx) Activity() *Activity {
	return &Activity{
		Typ:   SetInterestFeeRate,
		Value: s.FeeRate,
	}
}

// SetTreasuryTx updates the treasury address.
type SetTreasuryTx struct {
	Treasury common.Address `serialize:"true" json:"treasury"`
}

func (s *SetTreasuryTx) Execute(tc *TransactionContext) error {
	cfg, err := authorize(tc)
	if err != nil {
		return err
	}
	if s.Treasury == zeroAddress {
		return ErrZeroTreasury
	}
	cfg.Treasury = s.Treasury
	return SetConfig(tc.Database, cfg)
}

func (s *SetTreasuryTx) Copy() UnsignedTransaction {
	return &SetTreasuryTx{Treasury: s.Treasury}
}

func (s *SetTreasuryTx) Activity() *Activity {
	return &Activity{
		Typ: SetTreasury,
		To:  s.Treasury.Hex(),
	}
}
