package chain

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/regtestlabs/txprovenance/internal/model"
)

// ClassifiedOutput is one transaction output together with its vout index.
type ClassifiedOutput struct {
	Vout    uint32
	Address string
	Value   btcutil.Amount
}

// Classification partitions a transaction's outputs by their role in the
// payment. Recipient and Change are nil when no output qualifies.
// RecipientMatches counts the outputs whose address equals the recipient
// address; a value above one signals an ambiguous transaction where only the
// first match was kept and the rest went to External.
type Classification struct {
	Recipient        *ClassifiedOutput
	Change           *ClassifiedOutput
	External         []ClassifiedOutput
	RecipientMatches int
}

// RecipientAddress returns the recipient output address, empty when absent.
func (c Classification) RecipientAddress() string {
	if c.Recipient == nil {
		return ""
	}
	return c.Recipient.Address
}

// RecipientAmount returns the recipient output value, zero when absent.
func (c Classification) RecipientAmount() btcutil.Amount {
	if c.Recipient == nil {
		return 0
	}
	return c.Recipient.Value
}

// ChangeAddress returns the change output address, empty when absent.
func (c Classification) ChangeAddress() string {
	if c.Change == nil {
		return ""
	}
	return c.Change.Address
}

// ChangeAmount returns the change output value, zero when absent.
func (c Classification) ChangeAmount() btcutil.Amount {
	if c.Change == nil {
		return 0
	}
	return c.Change.Value
}

// Classifier assigns transaction outputs to recipient, change and external
// roles. Recipient is matched by exact address equality; change is the first
// remaining output the ownership oracle reports as owned by the wallet.
// There is no on-chain marker for change, ownership knowledge is the only
// way to tell it apart from a third-party output.
type Classifier struct {
	oracle OwnershipOracle
	logger *zap.Logger
}

// NewClassifier constructs a Classifier backed by the given ownership oracle.
func NewClassifier(oracle OwnershipOracle, logger *zap.Logger) *Classifier {
	return &Classifier{oracle: oracle, logger: logger}
}

// Classify walks outputs in vout order and partitions them. It is a pure
// function of its inputs plus oracle answers; oracle failures are treated as
// not owned rather than propagated.
func (c *Classifier) Classify(ctx context.Context, outputs []model.Output, recipient string) Classification {
	var res Classification
	for idx, out := range outputs {
		classified := ClassifiedOutput{
			Vout:    uint32(idx),
			Address: out.Address,
			Value:   out.Value,
		}

		if out.Address != "" && out.Address == recipient {
			res.RecipientMatches++
			if res.Recipient == nil {
				res.Recipient = &classified
				continue
			}
			res.External = append(res.External, classified)
			continue
		}

		if out.Address != "" && res.Change == nil {
			owned, err := c.oracle.IsOwned(ctx, out.Address)
			if err != nil {
				c.logger.Debug("ownership lookup failed, treating output as external",
					zap.String("address", out.Address),
					zap.Error(err))
				owned = false
			}
			if owned {
				res.Change = &classified
				continue
			}
		}

		res.External = append(res.External, classified)
	}
	return res
}
