// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// integration implements the integration tests.
package integration_test

import (
	"crypto/ecdsa"
	"encoding/hex"
	"flag"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/inconshreveable/log15"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ava-labs/yieldvm/chain"
	"github.com/ava-labs/yieldvm/client"
	"github.com/ava-labs/yieldvm/vm"
)

func TestIntegration(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "yieldvm integration test suites")
}

var requestTimeout time.Duration

func init() {
	flag.DurationVar(
		&requestTimeout,
		"request-timeout",
		30*time.Second,
		"timeout for transaction issuance",
	)
}

var (
	priv   *ecdsa.PrivateKey
	sender ecommon.Address

	priv2   *ecdsa.PrivateKey
	sender2 ecommon.Address

	genesis    *chain.Genesis
	v          *vm.VM
	httpServer *httptest.Server
	cli        client.Client

	weth = ecommon.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

	// expiries must be future multiples of the divisor
	expiry  uint64
	expiry2 uint64
)

var _ = ginkgo.BeforeSuite(func() {
	var err error
	priv, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	sender = crypto.PubkeyToAddress(priv.PublicKey)

	log.Debug("generated key", "addr", sender, "priv", hex.EncodeToString(crypto.FromECDSA(priv)))

	priv2, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	sender2 = crypto.PubkeyToAddress(priv2.PublicKey)

	genesis = chain.DefaultGenesis()
	genesis.Governance = sender
	genesis.Treasury = ecommon.HexToAddress("0x2222222222222222222222222222222222222222")

	day := genesis.ExpiryDivisor
	expiry = (uint64(time.Now().Unix())/day + 30) * day
	expiry2 = expiry + day

	v = vm.New(memdb.New(), genesis)
	gomega.Ω(v.Initialize()).Should(gomega.BeNil())

	hd, err := v.CreateHandlers()
	gomega.Ω(err).Should(gomega.BeNil())
	httpServer = httptest.NewServer(hd[vm.PublicEndpoint])
	cli = client.New(httpServer.URL, requestTimeout)
})

var _ = ginkgo.AfterSuite(func() {
	httpServer.Close()
	gomega.Ω(v.Shutdown()).Should(gomega.BeNil())
})

var _ = ginkgo.Describe("[Ping]", func() {
	ginkgo.It("can ping", func() {
		ok, err := cli.Ping()
		gomega.Ω(ok).Should(gomega.BeTrue())
		gomega.Ω(err).Should(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("[Genesis]", func() {
	ginkgo.It("serves the genesis", func() {
		g, err := cli.Genesis()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(g.Governance).Should(gomega.Equal(sender))
		gomega.Ω(g.Factory).Should(gomega.Equal(chain.DefaultFactoryAddress))
	})
})

// The factory flow is stateful; the specs below build on each other and
// live in one container so they run in order.
var _ = ginkgo.Describe("[Factory]", func() {
	ginkgo.It("rejects registration from a non-governance key", func() {
		_, _, err := client.SignIssueTx(cli, &chain.RegisterAssetTx{
			Address:  weth,
			Name:     "Wrapped Ether",
			Symbol:   "WETH",
			Decimals: 18,
		}, priv2)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("not authorized"))
	})

	ginkgo.It("registers an asset", func() {
		_, a, err := client.SignIssueTx(cli, &chain.RegisterAssetTx{
			Address:  weth,
			Name:     "Wrapped Ether",
			Symbol:   "WETH",
			Decimals: 18,
		}, priv)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(a.Typ).Should(gomega.Equal(chain.RegisterAsset))

		asset, exists, err := cli.Asset(weth)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(exists).Should(gomega.BeTrue())
		gomega.Ω(asset.Symbol).Should(gomega.Equal("WETH"))
	})

	ginkgo.It("rejects duplicate registration", func() {
		_, _, err := client.SignIssueTx(cli, &chain.RegisterAssetTx{
			Address:  weth,
			Name:     "Wrapped Ether",
			Symbol:   "WETH",
			Decimals: 18,
		}, priv)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("already registered"))
	})

	ginkgo.It("lets anyone create a pair for a registered asset", func() {
		_, a, err := client.SignIssueTx(cli, &chain.CreateYieldContractTx{
			Underlying: weth,
			Expiry:     expiry,
		}, priv2)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(a.Typ).Should(gomega.Equal(chain.CreateYieldContract))

		pt, exists, err := cli.PrincipalToken(weth, expiry)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(exists).Should(gomega.BeTrue())
		gomega.Ω(pt).Should(gomega.Equal(chain.CreateAddressUint64(genesis.Factory, 2)))

		yt, exists, err := cli.YieldToken(weth, expiry)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(exists).Should(gomega.BeTrue())
		gomega.Ω(yt).Should(gomega.Equal(chain.CreateAddressUint64(genesis.Factory, 3)))
	})

	ginkgo.It("rejects a duplicate pair", func() {
		_, _, err := client.SignIssueTx(cli, &chain.CreateYieldContractTx{
			Underlying: weth,
			Expiry:     expiry,
		}, priv)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("already exists"))
	})

	ginkgo.It("rejects a misaligned expiry", func() {
		_, _, err := client.SignIssueTx(cli, &chain.CreateYieldContractTx{
			Underlying: weth,
			Expiry:     expiry + 1,
		}, priv)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("multiple"))
	})

	ginkgo.It("classifies deployed instruments", func() {
		pt, _, err := cli.PrincipalToken(weth, expiry)
		gomega.Ω(err).Should(gomega.BeNil())
		yt, _, err := cli.YieldToken(weth, expiry)
		gomega.Ω(err).Should(gomega.BeNil())

		found, err := cli.IsPrincipalToken(pt)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(found).Should(gomega.BeTrue())

		found, err = cli.IsYieldToken(pt)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(found).Should(gomega.BeFalse())

		found, err = cli.IsYieldToken(yt)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(found).Should(gomega.BeTrue())

		found, err = cli.IsPrincipalToken(weth)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(found).Should(gomega.BeFalse())
	})

	ginkgo.It("creates a second expiry at the next sequence numbers", func() {
		_, _, err := client.SignIssueTx(cli, &chain.CreateYieldContractTx{
			Underlying: weth,
			Expiry:     expiry2,
		}, priv)
		gomega.Ω(err).Should(gomega.BeNil())

		pt, _, err := cli.PrincipalToken(weth, expiry2)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(pt).Should(gomega.Equal(chain.CreateAddressUint64(genesis.Factory, 4)))

		nonce, exists, err := cli.Nonce(genesis.Factory)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(exists).Should(gomega.BeTrue())
		gomega.Ω(nonce).Should(gomega.Equal(uint64(5)))
	})

	ginkgo.It("updates the fee rate", func() {
		_, _, err := client.SignIssueTx(cli, &chain.SetInterestFeeRateTx{FeeRate: 300}, priv)
		gomega.Ω(err).Should(gomega.BeNil())

		c, err := cli.Config()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(c.InterestFeeRate).Should(gomega.Equal(uint64(300)))
	})

	ginkgo.It("updates the treasury", func() {
		newTreasury := ecommon.HexToAddress("0x5555555555555555555555555555555555555555")
		_, _, err := client.SignIssueTx(cli, &chain.SetTreasuryTx{Treasury: newTreasury}, priv)
		gomega.Ω(err).Should(gomega.BeNil())

		c, err := cli.Config()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(c.Treasury).Should(gomega.Equal(newTreasury))
	})

	ginkgo.It("rejects a zero divisor", func() {
		_, _, err := client.SignIssueTx(cli, &chain.SetExpiryDivisorTx{Divisor: 0}, priv)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("divisor"))
	})

	ginkgo.It("rejects governance operations from other keys", func() {
		_, _, err := client.SignIssueTx(cli, &chain.SetInterestFeeRateTx{FeeRate: 1}, priv2)
		gomega.Ω(err.Error()).Should(gomega.ContainSubstring("not authorized"))
	})

	ginkgo.It("serves recent activity newest first", func() {
		activity, err := cli.RecentActivity(3)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(len(activity)).Should(gomega.Equal(3))
		gomega.Ω(activity[0].Typ).Should(gomega.Equal(chain.SetTreasury))
	})
})
