// Package model defines domain models for transaction provenance resolution.
package model

import "github.com/btcsuite/btcd/btcutil"

// OutputRef identifies one output of a prior transaction by txid and vout index.
type OutputRef struct {
	TxID string
	Vout uint32
}

// Output is a decoded transaction output. Address is empty when the locking
// script has no standard address form.
type Output struct {
	Value   btcutil.Amount
	Address string
}

// Input references the previous output a transaction spends. An input carries
// no value or address of its own on chain, only the reference.
type Input struct {
	Prev     OutputRef
	Coinbase bool
}

// Transaction is a decoded transaction. Outputs keep on-chain vout order.
type Transaction struct {
	TxID    string
	Inputs  []Input
	Outputs []Output
}

// Confirmation names the block that includes a transaction. It is absent for
// transactions still in the mempool.
type Confirmation struct {
	BlockHash string
}
