// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "yieldvm" runs the yield contract factory as a standalone JSON-RPC
// daemon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/yieldvm/chain"
	"github.com/ava-labs/yieldvm/version"
	"github.com/ava-labs/yieldvm/vm"
)

var rootCmd = &cobra.Command{
	Use:     "yieldvm",
	Short:   "Yield contract factory daemon",
	Version: version.Version.String(),
	RunE:    runFunc,
}

func buildFlagSet() *pflag.FlagSet {
	f := pflag.NewFlagSet("yieldvm", pflag.ContinueOnError)
	f.Int("http-port", 9090, "port to serve the JSON-RPC API on")
	f.String("db-dir", "", "database directory (in-memory when empty)")
	f.String("genesis-file", "", "path to the genesis JSON document")
	f.String("log-level", "info", "log level")
	return f
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(buildFlagSet())
	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))
	viper.SetEnvPrefix("yieldvm")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yieldvm failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(cmd *cobra.Command, args []string) error {
	lvl, err := log.LvlFromString(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))

	genesis, err := loadGenesis(viper.GetString("genesis-file"))
	if err != nil {
		return err
	}

	var db database.Database
	if dir := viper.GetString("db-dir"); dir == "" {
		log.Warn("no db-dir set, state will not survive restarts")
		db = memdb.New()
	} else {
		db, err = leveldb.New(dir, logging.NoLog{}, 0, 0, 0)
		if err != nil {
			return err
		}
	}

	v := vm.New(db, genesis)
	if err := v.Initialize(); err != nil {
		return err
	}

	handlers, err := v.CreateHandlers()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.Handle(path, h)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetInt("http-port")),
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving", "addr", srv.Addr, "endpoint", vm.PublicEndpoint)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return err
		}
		return v.Shutdown()
	})
	return g.Wait()
}

func loadGenesis(path string) (*chain.Genesis, error) {
	if path == "" {
		return nil, fmt.Errorf("--genesis-file is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g := chain.DefaultGenesis()
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	if err := g.Verify(); err != nil {
		return nil, fmt.Errorf("invalid genesis: %w", err)
	}
	return g, nil
}
