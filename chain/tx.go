// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Transaction is the signed wire form of an operation.
type Transaction struct {
	UnsignedTransaction `serialize:"true" json:"unsignedTransaction"`
	Signature           []byte `serialize:"true" json:"signature"`

	digest []byte
	bytes  []byte
	id     ids.ID
	sender common.Address
}

func NewTx(utx UnsignedTransaction, sig []byte) *Transaction {
	return &Transaction{
		UnsignedTransaction: utx,
		Signature:           sig,
	}
}

// Init computes the digest, recovers the sender and assigns the
// transaction ID. It must be called before any accessor.
func (t *Transaction) Init() error {
	ub, err := UnsignedBytes(t.UnsignedTransaction)
	if err != nil {
		return err
	}
	t.digest = crypto.Keccak256(ub)

	sender, err := DeriveSender(t.digest, t.Signature)
	if err != nil {
		return err
	}
	t.sender = sender

	b, err := Marshal(t)
	if err != nil {
		return err
	}
	t.bytes = b

	h := sha3.Sum256(t.bytes)
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Sender() common.Address { return t.sender }

// ParseTx decodes and initializes a signed transaction.
func ParseTx(source []byte) (*Transaction, error) {
	tx := new(Transaction)
	if _, err := Unmarshal(source, tx); err != nil {
		return nil, err
	}
	if err := tx.Init(); err != nil {
		return nil, err
	}
	return tx, nil
}
