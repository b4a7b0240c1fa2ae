package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// RPCClient wraps btc rpcclient with metrics instrumentation. One instance
// talks to one endpoint, either the node itself or a /wallet/<name> path.
type RPCClient struct {
	client     RawRPC
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client RawRPC, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Shutdown tears down the underlying client and waits for it to finish.
func (r *RPCClient) Shutdown() {
	r.client.Shutdown()
	r.client.WaitForShutdown()
}

// CreateWallet creates a new wallet on the node.
func (r *RPCClient) CreateWallet(name string) (res *btcjson.CreateWalletResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("create_wallet", err, started)
	}()
	return r.client.CreateWallet(name)
}

// LoadWallet loads an existing wallet on the node.
func (r *RPCClient) LoadWallet(name string) (res *btcjson.LoadWalletResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("load_wallet", err, started)
	}()
	return r.client.LoadWallet(name)
}

// GetNewAddress returns a fresh receiving address with the given label.
func (r *RPCClient) GetNewAddress(label string) (addr btcutil.Address, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_new_address", err, started)
	}()
	return r.client.GetNewAddress(label)
}

// GetBalance returns the wallet's spendable balance.
func (r *RPCClient) GetBalance(account string) (balance btcutil.Amount, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_balance", err, started)
	}()
	return r.client.GetBalance(account)
}

// GenerateToAddress mines blocks paying the coinbase to the given address.
func (r *RPCClient) GenerateToAddress(numBlocks int64, address btcutil.Address, maxTries *int64) (hashes []*chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("generate_to_address", err, started)
	}()
	return r.client.GenerateToAddress(numBlocks, address, maxTries)
}

// SendToAddress sends the amount to the address from the wallet.
func (r *RPCClient) SendToAddress(address btcutil.Address, amount btcutil.Amount) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_to_address", err, started)
	}()
	return r.client.SendToAddress(address, amount)
}

// GetMempoolEntry returns mempool data for an unconfirmed transaction.
func (r *RPCClient) GetMempoolEntry(txid string) (entry *btcjson.GetMempoolEntryResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_mempool_entry", err, started)
	}()
	return r.client.GetMempoolEntry(txid)
}

// GetTransaction returns wallet-level data for a transaction, including the
// confirming block hash once mined.
func (r *RPCClient) GetTransaction(txHash *chainhash.Hash) (res *btcjson.GetTransactionResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction", err, started)
	}()
	return r.client.GetTransaction(txHash)
}

// GetRawTransactionVerbose returns the decoded form of a raw transaction.
func (r *RPCClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}

// GetBlockVerbose returns block metadata for a block hash.
func (r *RPCClient) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return r.client.GetBlockVerbose(blockHash)
}

// GetAddressInfo returns wallet knowledge about an address.
func (r *RPCClient) GetAddressInfo(address string) (res *btcjson.GetAddressInfoResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_address_info", err, started)
	}()
	return r.client.GetAddressInfo(address)
}
