// Package wallet drives the regtest demonstration workflow: wallet
// provisioning, mining until funded, one confirmed payment, then provenance
// resolution and report writing.
package wallet

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/regtestlabs/txprovenance/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ProvisionerRPC is the node-level surface for creating and loading
	// wallets.
	ProvisionerRPC interface {
		CreateWallet(name string) (*btcjson.CreateWalletResult, error)
		LoadWallet(name string) (*btcjson.LoadWalletResult, error)
	}

	// WalletRPC is the wallet-endpoint surface the workflow drives.
	WalletRPC interface {
		GetNewAddress(label string) (btcutil.Address, error)
		GetBalance(account string) (btcutil.Amount, error)
		GenerateToAddress(numBlocks int64, address btcutil.Address, maxTries *int64) ([]*chainhash.Hash, error)
		SendToAddress(address btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error)
		GetMempoolEntry(txid string) (*btcjson.GetMempoolEntryResult, error)
	}

	// WalletProvisioner ensures a named wallet exists and is loaded.
	WalletProvisioner interface {
		EnsureWallet(name string) error
	}

	// BalanceFunder mines to an address until the wallet has a spendable
	// balance.
	BalanceFunder interface {
		MineUntilFunded(ctx context.Context, address btcutil.Address) (blocks int64, balance btcutil.Amount, err error)
	}

	// ProvenanceResolver resolves a confirmed payment into a provenance
	// record.
	ProvenanceResolver interface {
		Resolve(ctx context.Context, txid, recipient string) (model.Record, error)
	}

	// ReportWriter persists a resolved record to the report artifact.
	ReportWriter interface {
		Write(record model.Record) error
	}
)
