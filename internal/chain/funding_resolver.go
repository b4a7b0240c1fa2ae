package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/regtestlabs/txprovenance/internal/model"
)

// ResolveFunding traces the first input of tx back to the output it spends
// and returns that output's address and value. The address is empty when the
// spent output has no standard address form.
//
// Only the first input is traced; the demonstration scenario is a
// single-payer transaction and multi-input aggregation is out of scope.
func ResolveFunding(ctx context.Context, node NodeClient, tx *model.Transaction) (string, btcutil.Amount, error) {
	if tx == nil || len(tx.Inputs) == 0 {
		return "", 0, errors.New("transaction has no inputs")
	}
	in := tx.Inputs[0]
	if in.Coinbase {
		return "", 0, fmt.Errorf("transaction %s is coinbase funded, no previous output: %w", tx.TxID, ErrNotFound)
	}
	out, err := node.GetOutput(ctx, in.Prev)
	if err != nil {
		return "", 0, fmt.Errorf("resolve funding output %s:%d: %w", in.Prev.TxID, in.Prev.Vout, err)
	}
	return out.Address, out.Value, nil
}
