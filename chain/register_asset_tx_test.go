// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

func TestRegisterAssetTx(t *testing.T) {
	t.Parallel()

	gov := common.HexToAddress("0x3333333333333333333333333333333333333333")
	outsider := common.HexToAddress("0x4444444444444444444444444444444444444444")
	stETH := common.HexToAddress("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84")

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.Governance = gov
	g.Treasury = common.HexToAddress("0x2222222222222222222222222222222222222222")
	if err := g.Load(db); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		utx    UnsignedTransaction
		sender common.Address
		err    error
	}{
		{
			utx:    &RegisterAssetTx{Address: stETH, Name: "Liquid staked Ether", Symbol: "stETH", Decimals: 18},
			sender: outsider,
			err:    ErrUnauthorized,
		},
		{
			utx:    &RegisterAssetTx{Name: "x", Symbol: "X", Decimals: 18},
			sender: gov,
			err:    ErrZeroAddress,
		},
		{
			utx:    &RegisterAssetTx{Address: stETH, Name: "Liquid staked Ether", Decimals: 18},
			sender: gov,
			err:    ErrEmptySymbol,
		},
		{
			utx:    &RegisterAssetTx{Address: stETH, Name: "Liquid staked Ether", Symbol: "stETH", Decimals: 18},
			sender: gov,
			err:    nil,
		},
		{ // re-registration is rejected
			utx:    &RegisterAssetTx{Address: stETH, Name: "Other", Symbol: "OTHER", Decimals: 6},
			sender: gov,
			err:    ErrAssetExists,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:   g,
			Database:  db,
			BlockTime: 1,
			TxID:      ids.Empty,
			Sender:    tv.sender,
		}
		err := tv.utx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	asset, exists, err := GetAsset(db, stETH)
	if err != nil || !exists {
		t.Fatalf("asset missing (%v)", err)
	}
	if asset.Symbol != "stETH" || asset.Decimals != 18 {
		t.Fatalf("unexpected asset record %+v", asset)
	}

	// the asset received a host account
	acct, exists, err := GetAccount(db, stETH)
	if err != nil || !exists {
		t.Fatalf("asset account missing (%v)", err)
	}
	if acct.Nonce != 1 {
		t.Fatalf("asset account nonce expected 1, got %d", acct.Nonce)
	}
}
