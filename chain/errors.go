// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Input Validation
	ErrExpiryNotFuture  = errors.New("expiry not in the future")
	ErrExpiryMisaligned = errors.New("expiry not a multiple of the expiry divisor")
	ErrZeroDivisor      = errors.New("expiry divisor is zero")
	ErrZeroTreasury     = errors.New("treasury is the zero address")
	ErrZeroAddress      = errors.New("address is the zero address")
	ErrEmptySymbol      = errors.New("empty asset symbol")

	// Registration
	ErrPairExists   = errors.New("yield contract pair already exists")
	ErrAssetExists  = errors.New("asset already registered")
	ErrAssetMissing = errors.New("asset not registered")

	// Authorization
	ErrUnauthorized = errors.New("sender is not authorized")

	// Internal Invariants
	//
	// These should never fire. Either one means the deployment counter
	// and the host nonce bookkeeping diverged, and committing would
	// corrupt the registry with wrong cross-references.
	ErrPTAddressMismatch = errors.New("principal token address does not match prediction")
	ErrYTAddressMismatch = errors.New("yield token address does not match prediction")

	// Host Creation
	ErrEmptyPayload    = errors.New("empty creation payload")
	ErrAddressOccupied = errors.New("create address already occupied")
	ErrCodeMissing     = errors.New("creation code not found")

	// Crypto
	ErrInvalidSignature = errors.New("invalid signature")
)
