// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
)

func TestRawCodeDeployer(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	deployer := common.HexToAddress("0x0100000000000000000000000000000000000001")
	if err := SetAccount(db, deployer, &Account{Nonce: 1}); err != nil {
		t.Fatal(err)
	}

	code := []byte{0x60, 0x80, 0x60, 0x40}
	args := []byte{0xaa, 0xbb, 0xcc}
	d := NewRawCodeDeployer(map[string][]byte{YieldTokenRef: code})

	addr, err := d.DeployWithArgs(db, deployer, YieldTokenRef, args)
	if err != nil {
		t.Fatal(err)
	}

	acct, exists, err := GetAccount(db, addr)
	if err != nil || !exists {
		t.Fatalf("deployed account missing (%v)", err)
	}
	if expected := append(append([]byte{}, code...), args...); !bytes.Equal(acct.Code, expected) {
		t.Fatalf("payload expected %x, got %x", expected, acct.Code)
	}

	// increment is charged to the deploying account
	facct, _, err := GetAccount(db, deployer)
	if err != nil {
		t.Fatal(err)
	}
	if facct.Nonce != 2 {
		t.Fatalf("deployer nonce expected 2, got %d", facct.Nonce)
	}
}

func TestRawCodeDeployerMissingRef(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	d := NewRawCodeDeployer(nil)
	if _, err := d.DeployWithArgs(db, common.Address{0x1}, "nope", nil); !errors.Is(err, ErrCodeMissing) {
		t.Fatalf("expected %v, got %v", ErrCodeMissing, err)
	}
}

func TestRawCodeDeployerImmutableBlobs(t *testing.T) {
	t.Parallel()

	code := []byte{0x01, 0x02, 0x03}
	d := NewRawCodeDeployer(map[string][]byte{"x": code})
	code[0] = 0xff

	db := memdb.New()
	defer db.Close()

	addr, err := d.DeployWithArgs(db, common.Address{0x1}, "x", nil)
	if err != nil {
		t.Fatal(err)
	}
	acct, _, err := GetAccount(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(acct.Code, []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("stored code mutated: %x", acct.Code)
	}
}
