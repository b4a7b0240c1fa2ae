package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/regtestlabs/txprovenance/internal/bitcoin"
	"github.com/regtestlabs/txprovenance/internal/chain"
	"github.com/regtestlabs/txprovenance/internal/metrics"
	"github.com/regtestlabs/txprovenance/internal/report"
	"github.com/regtestlabs/txprovenance/internal/wallet"
)

type config struct {
	RPCURL       string  `long:"rpc-url" env:"TXPROV_RPC_URL" description:"Bitcoin Core RPC URL" default:"http://127.0.0.1:18443"`
	RPCUser      string  `long:"rpc-user" env:"TXPROV_RPC_USER" description:"Bitcoin RPC username" default:"alice"`
	RPCPassword  string  `long:"rpc-password" env:"TXPROV_RPC_PASSWORD" description:"Bitcoin RPC password" default:"password"`
	Network      string  `long:"network" env:"TXPROV_NETWORK" description:"network name" default:"regtest"`
	MinerWallet  string  `long:"miner-wallet" env:"TXPROV_MINER_WALLET" description:"sending wallet name" default:"Miner"`
	TraderWallet string  `long:"trader-wallet" env:"TXPROV_TRADER_WALLET" description:"receiving wallet name" default:"Trader"`
	PaymentBTC   float64 `long:"payment-btc" env:"TXPROV_PAYMENT_BTC" description:"payment amount in BTC" default:"20"`
	ReportPath   string  `long:"report-path" env:"TXPROV_REPORT_PATH" description:"report artifact path" default:"out.txt"`
	MetricsAddr  string  `long:"metrics-addr" env:"TXPROV_METRICS_ADDR" description:"optional Prometheus metrics listen address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("payment demo failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	nodeRPC, err := newRPCClient(cfg, "")
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer nodeRPC.Shutdown()

	minerRPC, err := newRPCClient(cfg, cfg.MinerWallet)
	if err != nil {
		return fmt.Errorf("init %s wallet rpc client: %w", cfg.MinerWallet, err)
	}
	defer minerRPC.Shutdown()

	traderRPC, err := newRPCClient(cfg, cfg.TraderWallet)
	if err != nil {
		return fmt.Errorf("init %s wallet rpc client: %w", cfg.TraderWallet, err)
	}
	defer traderRPC.Shutdown()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}

	amount, err := btcutil.NewAmount(cfg.PaymentBTC)
	if err != nil {
		return fmt.Errorf("parse payment amount: %w", err)
	}

	// Ownership answers come from the miner wallet endpoint: change is
	// whatever the sender's wallet recognizes as its own.
	node := bitcoin.NewNodeClient(minerRPC, decoder)
	resolver := chain.NewResolver(node, node, logger.Named("resolver"))

	svc, err := wallet.NewDemoService(
		wallet.DemoConfig{
			MinerWallet:   cfg.MinerWallet,
			TraderWallet:  cfg.TraderWallet,
			MiningLabel:   "Mining Reward",
			ReceiveLabel:  "Received",
			PaymentAmount: amount,
		},
		wallet.NewProvisioner(nodeRPC, logger.Named("provisioner")),
		wallet.NewFunder(minerRPC, logger.Named("funder")),
		minerRPC,
		traderRPC,
		resolver,
		report.NewWriter(cfg.ReportPath),
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

// newRPCClient builds an instrumented client for the node endpoint, or for a
// wallet endpoint when a wallet name is given.
func newRPCClient(cfg config, walletName string) (*bitcoin.RPCClient, error) {
	parsed, err := url.Parse(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	host := parsed.Host
	endpoint := "node"
	if walletName != "" {
		host = host + "/wallet/" + walletName
		endpoint = walletName
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         host,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPassword,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, err
	}
	return bitcoin.NewRPCClient(client, metrics.NewRPCClient(endpoint)), nil
}

func serveMetrics(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics listener stopped", zap.Error(err))
	}
}
