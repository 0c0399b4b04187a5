// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the "yieldvm" client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/yieldvm/chain"
	"github.com/ava-labs/yieldvm/vm"
)

// Client defines yieldvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)
	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)

	// Issues a signed transaction and returns its ID with the
	// committed activity record.
	IssueTx(d []byte) (ids.ID, *chain.Activity, error)

	// Returns the current governance configuration.
	Config() (*chain.Config, error)
	// Returns the metadata of a registered underlying asset.
	Asset(addr common.Address) (*chain.Asset, bool, error)

	// Registry lookups.
	PrincipalToken(underlying common.Address, expiry uint64) (common.Address, bool, error)
	YieldToken(underlying common.Address, expiry uint64) (common.Address, bool, error)
	IsPrincipalToken(addr common.Address) (bool, error)
	IsYieldToken(addr common.Address) (bool, error)

	// Nonce returns the host sequence counter of an account.
	Nonce(addr common.Address) (uint64, bool, error)
	// RecentActivity returns the newest activity records.
	RecentActivity(limit uint64) ([]*chain.Activity, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	if err := cli.req.SendRequest("ping", nil, resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	if err := cli.req.SendRequest("genesis", nil, resp); err != nil {
		return nil, err
	}
	return resp.Genesis, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, *chain.Activity, error) {
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest("issueTx", &vm.IssueTxArgs{Tx: d}, resp); err != nil {
		return ids.Empty, nil, err
	}
	return resp.TxID, resp.Activity, nil
}

func (cli *client) Config() (*chain.Config, error) {
	resp := new(vm.ConfigReply)
	if err := cli.req.SendRequest("config", nil, resp); err != nil {
		return nil, err
	}
	return resp.Config, nil
}

func (cli *client) Asset(addr common.Address) (*chain.Asset, bool, error) {
	resp := new(vm.AssetReply)
	if err := cli.req.SendRequest("asset", &vm.AssetArgs{Address: addr}, resp); err != nil {
		return nil, false, err
	}
	return resp.Asset, resp.Exists, nil
}

func (cli *client) PrincipalToken(underlying common.Address, expiry uint64) (common.Address, bool, error) {
	resp := new(vm.PairReply)
	if err := cli.req.SendRequest("principalToken", &vm.PairArgs{
		Underlying: underlying,
		Expiry:     expiry,
	}, resp); err != nil {
		return common.Address{}, false, err
	}
	return resp.Address, resp.Exists, nil
}

func (cli *client) YieldToken(underlying common.Address, expiry uint64) (common.Address, bool, error) {
	resp := new(vm.PairReply)
	if err := cli.req.SendRequest("yieldToken", &vm.PairArgs{
		Underlying: underlying,
		Expiry:     expiry,
	}, resp); err != nil {
		return common.Address{}, false, err
	}
	return resp.Address, resp.Exists, nil
}

func (cli *client) IsPrincipalToken(addr common.Address) (bool, error) {
	resp := new(vm.MembershipReply)
	if err := cli.req.SendRequest("isPrincipalToken", &vm.MembershipArgs{Address: addr}, resp); err != nil {
		return false, err
	}
	return resp.Found, nil
}

func (cli *client) IsYieldToken(addr common.Address) (bool, error) {
	resp := new(vm.MembershipReply)
	if err := cli.req.SendRequest("isYieldToken", &vm.MembershipArgs{Address: addr}, resp); err != nil {
		return false, err
	}
	return resp.Found, nil
}

func (cli *client) Nonce(addr common.Address) (uint64, bool, error) {
	resp := new(vm.NonceReply)
	if err := cli.req.SendRequest("nonce", &vm.NonceArgs{Address: addr}, resp); err != nil {
		return 0, false, err
	}
	return resp.Nonce, resp.Exists, nil
}

func (cli *client) RecentActivity(limit uint64) ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest("recentActivity", &vm.RecentActivityArgs{Limit: limit}, resp); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}
