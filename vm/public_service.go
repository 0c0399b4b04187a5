// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/yieldvm/chain"
)

var ErrInvalidEmptyTx = errors.New("invalid empty transaction")

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueTxArgs struct {
	Tx hexutil.Bytes `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID     ids.ID          `serialize:"true" json:"txId"`
	Activity *chain.Activity `serialize:"true" json:"activity"`
	Success  bool            `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx, err := chain.ParseTx(args.Tx)
	if err != nil {
		return err
	}
	reply.TxID = tx.ID()

	a, err := svc.vm.Submit(tx)
	if err != nil {
		reply.Success = false
		return err
	}
	reply.Activity = a
	reply.Success = true
	return nil
}

type ConfigReply struct {
	Config *chain.Config `serialize:"true" json:"config"`
}

func (svc *PublicService) Config(_ *http.Request, _ *struct{}, reply *ConfigReply) error {
	c, err := chain.GetConfig(svc.vm.State())
	if err != nil {
		return err
	}
	reply.Config = c
	return nil
}

type AssetArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type AssetReply struct {
	Asset  *chain.Asset `serialize:"true" json:"asset,omitempty"`
	Exists bool         `serialize:"true" json:"exists"`
}

func (svc *PublicService) Asset(_ *http.Request, args *AssetArgs, reply *AssetReply) error {
	a, exists, err := chain.GetAsset(svc.vm.State(), args.Address)
	if err != nil {
		return err
	}
	reply.Asset = a
	reply.Exists = exists
	return nil
}

type PairArgs struct {
	Underlying common.Address `serialize:"true" json:"underlying"`
	Expiry     uint64         `serialize:"true" json:"expiry"`
}

type PairReply struct {
	Address common.Address `serialize:"true" json:"address"`
	Exists  bool           `serialize:"true" json:"exists"`
}

func (svc *PublicService) PrincipalToken(_ *http.Request, args *PairArgs, reply *PairReply) error {
	p, exists, err := chain.GetPair(svc.vm.State(), args.Underlying, args.Expiry)
	if err != nil {
		return err
	}
	if exists {
		reply.Address = p.PrincipalToken
	}
	reply.Exists = exists
	return nil
}

func (svc *PublicService) YieldToken(_ *http.Request, args *PairArgs, reply *PairReply) error {
	p, exists, err := chain.GetPair(svc.vm.State(), args.Underlying, args.Expiry)
	if err != nil {
		return err
	}
	if exists {
		reply.Address = p.YieldToken
	}
	reply.Exists = exists
	return nil
}

type MembershipArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type MembershipReply struct {
	Found bool `serialize:"true" json:"found"`
}

func (svc *PublicService) IsPrincipalToken(_ *http.Request, args *MembershipArgs, reply *MembershipReply) error {
	found, err := chain.IsPrincipalToken(svc.vm.State(), args.Address)
	if err != nil {
		return err
	}
	reply.Found = found
	return nil
}

func (svc *PublicService) IsYieldToken(_ *http.Request, args *MembershipArgs, reply *MembershipReply) error {
	found, err := chain.IsYieldToken(svc.vm.State(), args.Address)
	if err != nil {
		return err
	}
	reply.Found = found
	return nil
}

type NonceArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type NonceReply struct {
	Nonce  uint64 `serialize:"true" json:"nonce"`
	Exists bool   `serialize:"true" json:"exists"`
}

func (svc *PublicService) Nonce(_ *http.Request, args *NonceArgs, reply *NonceReply) error {
	acct, exists, err := chain.GetAccount(svc.vm.State(), args.Address)
	if err != nil {
		return err
	}
	if exists {
		reply.Nonce = acct.Nonce
	}
	reply.Exists = exists
	return nil
}

type RecentActivityArgs struct {
	Limit uint64 `serialize:"true" json:"limit"`
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, args *RecentActivityArgs, reply *RecentActivityReply) error {
	limit := args.Limit
	if limit == 0 {
		limit = 128
	}
	activity, err := chain.GetRecentActivity(svc.vm.State(), limit)
	if err != nil {
		return err
	}
	reply.Activity = activity
	return nil
}
