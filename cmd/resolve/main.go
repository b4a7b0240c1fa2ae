package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/regtestlabs/txprovenance/internal/bitcoin"
	"github.com/regtestlabs/txprovenance/internal/chain"
	"github.com/regtestlabs/txprovenance/internal/metrics"
	"github.com/regtestlabs/txprovenance/internal/report"
)

type config struct {
	RPCURL      string `long:"rpc-url" env:"TXPROV_RPC_URL" description:"Bitcoin Core RPC URL" default:"http://127.0.0.1:18443"`
	RPCUser     string `long:"rpc-user" env:"TXPROV_RPC_USER" description:"Bitcoin RPC username" default:"alice"`
	RPCPassword string `long:"rpc-password" env:"TXPROV_RPC_PASSWORD" description:"Bitcoin RPC password" default:"password"`
	Network     string `long:"network" env:"TXPROV_NETWORK" description:"network name" default:"regtest"`
	Wallet      string `long:"wallet" env:"TXPROV_WALLET" description:"wallet whose ownership classifies change outputs" default:"Miner"`
	TxID        string `long:"txid" env:"TXPROV_TXID" description:"confirmed transaction to resolve" required:"true"`
	Recipient   string `long:"recipient" env:"TXPROV_RECIPIENT" description:"recipient address of the payment" required:"true"`
	ReportPath  string `long:"report-path" env:"TXPROV_REPORT_PATH" description:"report artifact path" default:"out.txt"`
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
		logger.Fatal("provenance resolution failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	parsed, err := url.Parse(cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("rpc url missing host")
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host + "/wallet/" + cfg.Wallet,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPassword,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return fmt.Errorf("init wallet rpc client: %w", err)
	}
	rpc := bitcoin.NewRPCClient(client, metrics.NewRPCClient(cfg.Wallet))
	defer rpc.Shutdown()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}

	node := bitcoin.NewNodeClient(rpc, decoder)
	resolver := chain.NewResolver(node, node, logger.Named("resolver"))

	record, err := resolver.Resolve(ctx, cfg.TxID, cfg.Recipient)
	if err != nil {
		return err
	}

	if err := report.NewWriter(cfg.ReportPath).Write(record); err != nil {
		return err
	}
	logger.Info("report written",
		zap.String("txid", record.TxID),
		zap.String("funding_address", record.FundingAddress),
		zap.Float64("funding_btc", record.FundingAmount.ToBTC()),
		zap.Float64("fee_btc", record.Fee.ToBTC()),
		zap.Int64("block_height", record.BlockHeight),
		zap.String("path", cfg.ReportPath))
	return nil
}
