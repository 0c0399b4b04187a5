// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"crypto/ecdsa"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/yieldvm/chain"
)

// SignIssueTx signs an operation and issues it, returning the
// transaction ID and the committed activity record.
func SignIssueTx(
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
) (ids.ID, *chain.Activity, error) {
	dh, err := chain.DigestHash(utx)
	if err != nil {
		return ids.Empty, nil, err
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return ids.Empty, nil, err
	}

	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return ids.Empty, nil, err
	}
	return cli.IssueTx(tx.Bytes())
}
