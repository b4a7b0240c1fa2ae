package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/regtestlabs/txprovenance/internal/clock"
)

const (
	mempoolPollAttempts = 10
	mempoolPollInterval = 200 * time.Millisecond
)

// DemoConfig holds the tunables of the demonstration workflow.
type DemoConfig struct {
	MinerWallet   string
	TraderWallet  string
	MiningLabel   string
	ReceiveLabel  string
	PaymentAmount btcutil.Amount
}

// DemoService runs the full regtest payment demonstration end to end. Every
// step is sequential and every failure is fatal; the report is only written
// from a fully resolved record.
type DemoService struct {
	cfg         DemoConfig
	provisioner WalletProvisioner
	funder      BalanceFunder
	miner       WalletRPC
	trader      WalletRPC
	resolver    ProvenanceResolver
	report      ReportWriter
	sleep       func(context.Context, time.Duration) error
	logger      *zap.Logger
}

// NewDemoService builds the demo workflow with its dependencies.
func NewDemoService(
	cfg DemoConfig,
	provisioner WalletProvisioner,
	funder BalanceFunder,
	miner WalletRPC,
	trader WalletRPC,
	resolver ProvenanceResolver,
	report ReportWriter,
	logger *zap.Logger,
) (*DemoService, error) {
	if cfg.MinerWallet == "" || cfg.TraderWallet == "" {
		return nil, errors.New("miner and trader wallet names are required")
	}
	if cfg.PaymentAmount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}
	return &DemoService{
		cfg:         cfg,
		provisioner: provisioner,
		funder:      funder,
		miner:       miner,
		trader:      trader,
		resolver:    resolver,
		report:      report,
		sleep:       clock.SleepWithContext,
		logger:      logger,
	}, nil
}

// Run executes the workflow: provision wallets, mine until the miner wallet
// is funded, pay the trader, confirm with one block, resolve provenance of
// the payment and write the report.
func (s *DemoService) Run(ctx context.Context) error {
	for _, name := range []string{s.cfg.MinerWallet, s.cfg.TraderWallet} {
		if err := s.provisioner.EnsureWallet(name); err != nil {
			return err
		}
	}

	miningAddr, err := s.miner.GetNewAddress(s.cfg.MiningLabel)
	if err != nil {
		return fmt.Errorf("get mining address: %w", err)
	}
	s.logger.Info("mining address generated",
		zap.String("wallet", s.cfg.MinerWallet),
		zap.String("address", miningAddr.EncodeAddress()))

	mined, balance, err := s.funder.MineUntilFunded(ctx, miningAddr)
	if err != nil {
		return fmt.Errorf("fund miner wallet: %w", err)
	}
	s.logger.Info("miner wallet spendable",
		zap.Int64("blocks_mined", mined),
		zap.Float64("balance_btc", balance.ToBTC()))

	tradeAddr, err := s.trader.GetNewAddress(s.cfg.ReceiveLabel)
	if err != nil {
		return fmt.Errorf("get receiving address: %w", err)
	}
	s.logger.Info("receiving address generated",
		zap.String("wallet", s.cfg.TraderWallet),
		zap.String("address", tradeAddr.EncodeAddress()))

	txHash, err := s.miner.SendToAddress(tradeAddr, s.cfg.PaymentAmount)
	if err != nil {
		return fmt.Errorf("send payment: %w", err)
	}
	txid := txHash.String()
	s.logger.Info("payment sent",
		zap.String("txid", txid),
		zap.Float64("amount_btc", s.cfg.PaymentAmount.ToBTC()))

	entry, err := s.awaitMempool(ctx, txid)
	if err != nil {
		return err
	}
	s.logger.Info("payment in mempool",
		zap.String("txid", txid),
		zap.Float64("fee_btc", entry.Fee),
		zap.Int64("height", entry.Height))

	if _, err := s.miner.GenerateToAddress(1, miningAddr, nil); err != nil {
		return fmt.Errorf("mine confirmation block: %w", err)
	}
	s.logger.Info("payment confirmed", zap.String("txid", txid))

	record, err := s.resolver.Resolve(ctx, txid, tradeAddr.EncodeAddress())
	if err != nil {
		return fmt.Errorf("resolve provenance: %w", err)
	}

	if err := s.report.Write(record); err != nil {
		return err
	}
	s.logger.Info("report written",
		zap.String("txid", record.TxID),
		zap.String("funding_address", record.FundingAddress),
		zap.Float64("fee_btc", record.Fee.ToBTC()),
		zap.Int64("block_height", record.BlockHeight))
	return nil
}

// awaitMempool polls for the mempool entry of a just-sent transaction. The
// wallet broadcasts asynchronously, the entry can lag the send by a moment.
func (s *DemoService) awaitMempool(ctx context.Context, txid string) (*btcjson.GetMempoolEntryResult, error) {
	var lastErr error
	for attempt := 0; attempt < mempoolPollAttempts; attempt++ {
		entry, err := s.miner.GetMempoolEntry(txid)
		if err == nil {
			return entry, nil
		}
		lastErr = err
		if err := s.sleep(ctx, mempoolPollInterval); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("mempool entry for %s: %w", txid, lastErr)
}
