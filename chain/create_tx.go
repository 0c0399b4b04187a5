// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/yieldvm/contracts"
)

var _ UnsignedTransaction = &CreateYieldContractTx{}

// CreateYieldContractTx deploys a (principal, yield) instrument pair
// for an underlying asset and expiry, and registers it.
//
// Each constructor must be handed the address of its partner before
// that partner exists. Both addresses are therefore predicted from the
// deployment counter ahead of either deployment, and each real address
// is checked against its prediction before the registry is written.
type CreateYieldContractTx struct {
	Underlying common.Address `serialize:"true" json:"underlying"`
	Expiry     uint64         `serialize:"true" json:"expiry"`

	// populated by Execute
	pt common.Address
	yt common.Address
}

func (c *CreateYieldContractTx) Execute(tc *TransactionContext) error {
	db := tc.Database

	if c.Expiry <= tc.BlockTime {
		return ErrExpiryNotFuture
	}
	cfg, err := GetConfig(db)
	if err != nil {
		return err
	}
	if c.Expiry%cfg.ExpiryDivisor != 0 {
		return ErrExpiryMisaligned
	}
	if has, err := HasPair(db, c.Underlying, c.Expiry); err != nil {
		return err
	} else if has {
		return ErrPairExists
	}

	asset, exists, err := GetAsset(db, c.Underlying)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetMissing
	}

	counter, err := GetDeploymentCounter(db)
	if err != nil {
		return err
	}
	counter++
	ptPredicted := CreateAddressUint64(cfg.Factory, counter)
	counter++
	ytPredicted := CreateAddressUint64(cfg.Factory, counter)
	if err := SetDeploymentCounter(db, counter); err != nil {
		return err
	}

	// PT is instantiated directly from the compiled-in creation code.
	// Its constructor embeds the yield token's predicted address.
	ptArgs, err := PackInstrumentArgs(
		c.Underlying, ytPredicted,
		InstrumentName(PrincipalPrefix, asset.Name, c.Expiry),
		InstrumentSymbol(PrincipalPrefix, asset.Symbol, c.Expiry),
		asset.Decimals, c.Expiry,
	)
	if err != nil {
		return err
	}
	payload := append(contracts.PrincipalTokenCode(), ptArgs...)
	pt, err := Create(db, cfg.Factory, payload)
	if err != nil {
		return err
	}
	if pt != ptPredicted {
		return ErrPTAddressMismatch
	}

	// YT is deployed through the raw code deployer and gets the real
	// (verified) PT address.
	ytArgs, err := PackInstrumentArgs(
		c.Underlying, pt,
		InstrumentName(YieldPrefix, asset.Name, c.Expiry),
		InstrumentSymbol(YieldPrefix, asset.Symbol, c.Expiry),
		asset.Decimals, c.Expiry,
	)
	if err != nil {
		return err
	}
	yt, err := tc.Deployer.DeployWithArgs(db, cfg.Factory, YieldTokenRef, ytArgs)
	if err != nil {
		return err
	}
	if yt != ytPredicted {
		return ErrYTAddressMismatch
	}

	if err := SetPair(db, c.Underlying, c.Expiry, &Pair{
		PrincipalToken: pt,
		YieldToken:     yt,
	}); err != nil {
		return err
	}

	c.pt = pt
	c.yt = yt
	return nil
}

func (c *CreateYieldContractTx) Copy() UnsignedTransaction {
	return &CreateYieldContractTx{
		Underlying: c.Underlying,
		Expiry:     c.Expiry,
	}
}

func (c *CreateYieldContractTx) Activity() *Activity {
	return &Activity{
		Typ:            CreateYieldContract,
		Underlying:     c.Underlying.Hex(),
		Expiry:         c.Expiry,
		PrincipalToken: c.pt.Hex(),
		YieldToken:     c.yt.Hex(),
	}
}

// PrincipalToken returns the address deployed by Execute.
func (c *CreateYieldContractTx) PrincipalToken() common.Address { return c.pt }

// YieldToken returns the address deployed by Execute.
func (c *CreateYieldContractTx) YieldToken() common.Address { return c.yt }
