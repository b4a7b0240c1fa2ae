// Package chain reconstructs the provenance of confirmed transactions using
// a node client: funding source, recipient and change outputs, and the
// implied network fee.
package chain

import (
	"context"

	"github.com/regtestlabs/txprovenance/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the node capability set provenance resolution consumes.
	NodeClient interface {
		GetTransaction(ctx context.Context, txid string) (*model.Transaction, *model.Confirmation, error)
		GetOutput(ctx context.Context, ref model.OutputRef) (model.Output, error)
		GetBlockHeight(ctx context.Context, blockHash string) (int64, error)
	}

	// OwnershipOracle answers whether the wallet owns an address. Lookup
	// failures are non-fatal to classification and count as not owned.
	OwnershipOracle interface {
		IsOwned(ctx context.Context, address string) (bool, error)
	}
)
