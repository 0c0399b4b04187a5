// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// 0x0/ (config singleton + deployment counter + activity count)
// 0x1/ (accounts)
//   -> [address]
// 0x2/ (asset metadata)
//   -> [address]
// 0x3/ (registry)
//   -> [underlying]
//     -> [expiry]
// 0x4/ (principal token membership)
// 0x5/ (yield token membership)
// 0x6/ (activity log)
//   -> [index]

const (
	configPrefix   = 0x0
	accountPrefix  = 0x1
	assetPrefix    = 0x2
	registryPrefix = 0x3
	ptPrefix       = 0x4
	ytPrefix       = 0x5
	activityPrefix = 0x6

	// ByteDelimiter separates the prefix byte from the key body.
	ByteDelimiter byte = '/'
)

var (
	configKey        = []byte{configPrefix, ByteDelimiter, 'c'}
	counterKey       = []byte{configPrefix, ByteDelimiter, 'n'}
	activityCountKey = []byte{configPrefix, ByteDelimiter, 'a'}
)

// Account is a host-side account record. Nonce counts the account's
// own creation plus every creation it has performed since.
type Account struct {
	Nonce   uint64         `serialize:"true" json:"nonce"`
	Code    []byte         `serialize:"true" json:"code,omitempty"`
	Creator common.Address `serialize:"true" json:"creator,omitempty"`
}

// Asset is the metadata surface an underlying yield-bearing asset
// exposes to the factory.
type Asset struct {
	Name     string `serialize:"true" json:"name"`
	Symbol   string `serialize:"true" json:"symbol"`
	Decimals uint8  `serialize:"true" json:"decimals"`
}

// Config is the governance-gated parameter set consumed by the factory
// and by the deployed instrument pairs.
type Config struct {
	Governance      common.Address `serialize:"true" json:"governance"`
	Treasury        common.Address `serialize:"true" json:"treasury"`
	Factory         common.Address `serialize:"true" json:"factory"`
	ExpiryDivisor   uint64         `serialize:"true" json:"expiryDivisor"`
	InterestFeeRate uint64         `serialize:"true" json:"interestFeeRate"`
}

func AccountKey(addr common.Address) []byte {
	return append([]byte{accountPrefix, ByteDelimiter}, addr.Bytes()...)
}

func AssetKey(addr common.Address) []byte {
	return append([]byte{assetPrefix, ByteDelimiter}, addr.Bytes()...)
}

func GetAccount(db database.Database, addr common.Address) (*Account, bool, error) {
	v, err := db.Get(AccountKey(addr))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var a Account
	if _, err := Unmarshal(v, &a); err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func SetAccount(db database.Database, addr common.Address, a *Account) error {
	v, err := Marshal(a)
	if err != nil {
		return err
	}
	return db.Put(AccountKey(addr), v)
}

func GetAsset(db database.Database, addr common.Address) (*Asset, bool, error) {
	v, err := db.Get(AssetKey(addr))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var a Asset
	if _, err := Unmarshal(v, &a); err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func SetAsset(db database.Database, addr common.Address, a *Asset) error {
	v, err := Marshal(a)
	if err != nil {
		return err
	}
	return db.Put(AssetKey(addr), v)
}

func HasAsset(db database.Database, addr common.Address) (bool, error) {
	return db.Has(AssetKey(addr))
}

func GetConfig(db database.Database) (*Config, error) {
	v, err := db.Get(configKey)
	if err != nil {
		return nil, err
	}
	var c Config
	if _, err := Unmarshal(v, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func SetConfig(db database.Database, c *Config) error {
	v, err := Marshal(c)
	if err != nil {
		return err
	}
	return db.Put(configKey, v)
}

// GetDeploymentCounter returns the factory's deployment sequence
// counter. The counter only ever moves forward.
func GetDeploymentCounter(db database.Database) (uint64, error) {
	v, err := db.Get(counterKey)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetDeploymentCounter(db database.Database, n uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return db.Put(counterKey, b)
}
