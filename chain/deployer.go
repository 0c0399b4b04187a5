// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// YieldTokenRef is the stored-code reference for the yield token
// family.
const YieldTokenRef = "yield-token"

// RawCodeDeployer holds immutable creation bytecode blobs registered
// at construction and deploys them with caller-supplied constructor
// arguments appended. The indirection lets the factory deploy contract
// families it does not define in its own code.
type RawCodeDeployer struct {
	codes map[string][]byte
}

// NewRawCodeDeployer captures [codes]. The blobs are copied so later
// mutation of the caller's slices cannot reach the stored code.
func NewRawCodeDeployer(codes map[string][]byte) *RawCodeDeployer {
	stored := make(map[string][]byte, len(codes))
	for ref, code := range codes {
		c := make([]byte, len(code))
		copy(c, code)
		stored[ref] = c
	}
	return &RawCodeDeployer{codes: stored}
}

// DeployWithArgs concatenates the code stored behind [ref] with
// [args] and creates the resulting payload on [deployer]'s behalf.
// The sequence-number increment is charged to [deployer], not to the
// RawCodeDeployer.
func (d *RawCodeDeployer) DeployWithArgs(
	db database.Database,
	deployer common.Address,
	ref string,
	args []byte,
) (common.Address, error) {
	code, ok := d.codes[ref]
	if !ok {
		return common.Address{}, ErrCodeMissing
	}
	payload := make([]byte, 0, len(code)+len(args))
	payload = append(payload, code...)
	payload = append(payload, args...)
	return Create(db, deployer, payload)
}
