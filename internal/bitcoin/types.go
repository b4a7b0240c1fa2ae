// Package bitcoin adapts a Bitcoin Core wallet RPC endpoint to the chain
// package's node client and ownership oracle interfaces.
package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RawRPC is the rpcclient surface the instrumented client wraps.
	// *rpcclient.Client satisfies it.
	RawRPC interface {
		CreateWallet(name string, opts ...rpcclient.CreateWalletOpt) (*btcjson.CreateWalletResult, error)
		LoadWallet(name string) (*btcjson.LoadWalletResult, error)
		GetNewAddress(label string) (btcutil.Address, error)
		GetBalance(account string) (btcutil.Amount, error)
		GenerateToAddress(numBlocks int64, address btcutil.Address, maxTries *int64) ([]*chainhash.Hash, error)
		SendToAddress(address btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error)
		GetMempoolEntry(txid string) (*btcjson.GetMempoolEntryResult, error)
		GetTransaction(txHash *chainhash.Hash) (*btcjson.GetTransactionResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetAddressInfo(address string) (*btcjson.GetAddressInfoResult, error)
		Shutdown()
		WaitForShutdown()
	}

	// NodeRPC is the subset of the instrumented client the provenance
	// adapter reads from.
	NodeRPC interface {
		GetTransaction(txHash *chainhash.Hash) (*btcjson.GetTransactionResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetAddressInfo(address string) (*btcjson.GetAddressInfoResult, error)
	}
)
