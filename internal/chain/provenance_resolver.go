package chain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/regtestlabs/txprovenance/internal/model"
)

// Resolver reconstructs the provenance of one confirmed transaction. Each
// resolution is a linear chain of node lookups with no retries: any node
// failure other than an ownership lookup aborts the whole operation.
type Resolver struct {
	node       NodeClient
	classifier *Classifier
	logger     *zap.Logger
}

// NewResolver builds a Resolver over the given node client and ownership
// oracle.
func NewResolver(node NodeClient, oracle OwnershipOracle, logger *zap.Logger) *Resolver {
	return &Resolver{
		node:       node,
		classifier: NewClassifier(oracle, logger.Named("classifier")),
		logger:     logger,
	}
}

// Resolve fetches the transaction, traces its funding output, classifies its
// outputs against the recipient address and assembles the provenance record.
// It fails with ErrUnconfirmed when the transaction is not yet in a block and
// with ErrNotFound when a referenced transaction, output or block cannot be
// located.
func (r *Resolver) Resolve(ctx context.Context, txid, recipient string) (model.Record, error) {
	tx, conf, err := r.node.GetTransaction(ctx, txid)
	if err != nil {
		return model.Record{}, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	if conf == nil {
		return model.Record{}, fmt.Errorf("transaction %s: %w", txid, ErrUnconfirmed)
	}

	fundingAddr, fundingAmount, err := ResolveFunding(ctx, r.node, tx)
	if err != nil {
		return model.Record{}, err
	}

	cls := r.classifier.Classify(ctx, tx.Outputs, recipient)
	if cls.RecipientMatches > 1 {
		r.logger.Warn("multiple outputs match recipient address, keeping the first",
			zap.String("txid", txid),
			zap.Int("matches", cls.RecipientMatches))
	}

	height, err := r.node.GetBlockHeight(ctx, conf.BlockHash)
	if err != nil {
		return model.Record{}, fmt.Errorf("get block %s: %w", conf.BlockHash, err)
	}

	return model.Record{
		TxID:             tx.TxID,
		FundingAddress:   fundingAddr,
		FundingAmount:    fundingAmount,
		RecipientAddress: cls.RecipientAddress(),
		RecipientAmount:  cls.RecipientAmount(),
		ChangeAddress:    cls.ChangeAddress(),
		ChangeAmount:     cls.ChangeAmount(),
		Fee:              ComputeFee(fundingAmount, cls.RecipientAmount(), cls.ChangeAmount()),
		BlockHeight:      height,
		BlockHash:        conf.BlockHash,
	}, nil
}
