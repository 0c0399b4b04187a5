// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultFactoryAddress is the well-known identity the factory deploys
// from unless the genesis overrides it.
var DefaultFactoryAddress = common.HexToAddress("0x0100000000000000000000000000000000000001")

type GenesisAsset struct {
	Address  common.Address `serialize:"true" json:"address"`
	Name     string         `serialize:"true" json:"name"`
	Symbol   string         `serialize:"true" json:"symbol"`
	Decimals uint8          `serialize:"true" json:"decimals"`
}

type Genesis struct {
	Governance common.Address `serialize:"true" json:"governance"`
	Treasury   common.Address `serialize:"true" json:"treasury"`
	Factory    common.Address `serialize:"true" json:"factory"`

	ExpiryDivisor   uint64 `serialize:"true" json:"expiryDivisor"`
	InterestFeeRate uint64 `serialize:"true" json:"interestFeeRate"`

	Assets []*GenesisAsset `serialize:"true" json:"assets,omitempty"`
}

// DefaultGenesis leaves governance and treasury unset; callers must
// fill them before Load.
func DefaultGenesis() *Genesis {
	return &Genesis{
		Factory:         DefaultFactoryAddress,
		ExpiryDivisor:   86400,
		InterestFeeRate: 0,
	}
}

func (g *Genesis) Verify() error {
	if g.ExpiryDivisor == 0 {
		return ErrZeroDivisor
	}
	if g.Treasury == zeroAddress {
		return ErrZeroTreasury
	}
	if g.Governance == zeroAddress || g.Factory == zeroAddress {
		return ErrZeroAddress
	}
	return nil
}

// Load seeds the store. The deployment counter starts at 1: the first
// sequence number is considered consumed by the factory's own
// creation, matching the host account rule in Create.
func (g *Genesis) Load(db database.Database) error {
	if err := g.Verify(); err != nil {
		return err
	}
	if err := SetConfig(db, &Config{
		Governance:      g.Governance,
		Treasury:        g.Treasury,
		Factory:         g.Factory,
		ExpiryDivisor:   g.ExpiryDivisor,
		InterestFeeRate: g.InterestFeeRate,
	}); err != nil {
		return err
	}
	if err := SetDeploymentCounter(db, 1); err != nil {
		return err
	}
	if err := SetAccount(db, g.Factory, &Account{Nonce: 1}); err != nil {
		return err
	}
	for _, a := range g.Assets {
		if a.Address == zeroAddress {
			return ErrZeroAddress
		}
		if len(a.Symbol) == 0 {
			return ErrEmptySymbol
		}
		if err := SetAccount(db, a.Address, &Account{Nonce: 1}); err != nil {
			return err
		}
		if err := SetAsset(db, a.Address, &Asset{
			Name:     a.Name,
			Symbol:   a.Symbol,
			Decimals: a.Decimals,
		}); err != nil {
			return err
		}
	}
	return nil
}
