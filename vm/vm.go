// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm hosts the yield contract factory as a JSON-RPC service.
package vm

import (
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	avajson "github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/yieldvm/chain"
	"github.com/ava-labs/yieldvm/contracts"
)

const (
	Name           = "yieldvm"
	PublicEndpoint = "/public"
)

type VM struct {
	db       database.Database
	genesis  *chain.Genesis
	executor *chain.Executor

	// Operations execute one at a time; the store has a single writer.
	txMu sync.Mutex

	now func() time.Time
}

func New(db database.Database, genesis *chain.Genesis) *VM {
	return &VM{
		db:      db,
		genesis: genesis,
		now:     time.Now,
	}
}

// Initialize wires the deployer and executor, and loads the genesis if
// the store has never seen one.
func (vm *VM) Initialize() error {
	deployer := chain.NewRawCodeDeployer(map[string][]byte{
		chain.YieldTokenRef: contracts.YieldTokenCode(),
	})
	vm.executor = chain.NewExecutor(vm.genesis, deployer)

	_, err := chain.GetConfig(vm.db)
	switch {
	case err == database.ErrNotFound:
		if err := vm.genesis.Load(vm.db); err != nil {
			return err
		}
		log.Info("genesis loaded",
			"factory", vm.genesis.Factory.Hex(),
			"governance", vm.genesis.Governance.Hex(),
			"expiryDivisor", vm.genesis.ExpiryDivisor,
		)
	case err != nil:
		return err
	default:
		log.Info("existing state found, skipping genesis load")
	}
	return nil
}

func (vm *VM) Shutdown() error {
	return vm.db.Close()
}

func (vm *VM) Genesis() *chain.Genesis { return vm.genesis }

// State exposes the authoritative store for read-only queries.
func (vm *VM) State() database.Database { return vm.db }

// Submit executes one signed transaction to completion. Either every
// effect commits or none do.
func (vm *VM) Submit(tx *chain.Transaction) (*chain.Activity, error) {
	vm.txMu.Lock()
	defer vm.txMu.Unlock()
	return vm.executor.Execute(vm.db, tx, uint64(vm.now().Unix()))
}

func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(avajson.NewCodec(), "application/json")
	server.RegisterCodec(avajson.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}
