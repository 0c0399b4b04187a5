// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contracts embeds the creation bytecode for the yield
// instrument family. The blobs are opaque to the host; the factory
// appends ABI-encoded constructor arguments before deployment.
package contracts

import (
	_ "embed"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

//go:embed principal_token.bin
var principalTokenHex string

//go:embed yield_token.bin
var yieldTokenHex string

// PrincipalTokenCode returns a fresh copy of the principal token
// creation bytecode.
func PrincipalTokenCode() []byte {
	return common.FromHex(strings.TrimSpace(principalTokenHex))
}

// YieldTokenCode returns a fresh copy of the yield token creation
// bytecode.
func YieldTokenCode() []byte {
	return common.FromHex(strings.TrimSpace(yieldTokenHex))
}
