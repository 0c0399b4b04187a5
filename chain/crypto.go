// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	vOffset      = 64
	legacySigAdj = 27
)

// DigestHash returns the Keccak-256 digest of an operation's canonical
// encoding. This is what submitters sign.
func DigestHash(utx UnsignedTransaction) ([]byte, error) {
	b, err := UnsignedBytes(utx)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(b), nil
}

func Sign(dh []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	sig[vOffset] += legacySigAdj
	return sig, nil
}

// DeriveSender recovers the address that signed [dh].
func DeriveSender(dh []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	// Avoid modifying the signature in place in case it is used elsewhere
	sigcpy := make([]byte, crypto.SignatureLength)
	copy(sigcpy, sig)

	// Support signers that don't apply offset (ex: ledger)
	if sigcpy[vOffset] >= legacySigAdj {
		sigcpy[vOffset] -= legacySigAdj
	}
	pub, err := crypto.SigToPub(dh, sigcpy)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
