package wallet

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// defaultMineRate caps generatetoaddress calls per second so a fresh chain's
// ~101-block maturity run does not hammer the node.
const defaultMineRate = 20

// Funder mines blocks to a wallet address until the wallet reports a
// positive spendable balance. Coinbase rewards need 100 confirmations to
// mature, so on a fresh regtest chain the first spendable reward appears
// after 101 blocks.
type Funder struct {
	rpc    WalletRPC
	limit  ratelimit.Limiter
	logger *zap.Logger
}

// NewFunder constructs a Funder over a wallet RPC endpoint.
func NewFunder(rpc WalletRPC, logger *zap.Logger) *Funder {
	return &Funder{
		rpc:    rpc,
		limit:  ratelimit.New(defaultMineRate),
		logger: logger,
	}
}

// MineUntilFunded generates one block at a time to the address until the
// wallet balance turns positive. It returns the number of blocks mined and
// the resulting balance.
func (f *Funder) MineUntilFunded(ctx context.Context, address btcutil.Address) (int64, btcutil.Amount, error) {
	balance, err := f.rpc.GetBalance("*")
	if err != nil {
		return 0, 0, fmt.Errorf("get balance: %w", err)
	}

	var mined int64
	for balance <= 0 {
		if err := ctx.Err(); err != nil {
			return mined, balance, err
		}
		f.limit.Take()

		if _, err := f.rpc.GenerateToAddress(1, address, nil); err != nil {
			return mined, balance, fmt.Errorf("generate to address: %w", err)
		}
		mined++

		if balance, err = f.rpc.GetBalance("*"); err != nil {
			return mined, 0, fmt.Errorf("get balance: %w", err)
		}
	}

	f.logger.Info("wallet funded",
		zap.Int64("blocks_mined", mined),
		zap.Float64("balance_btc", balance.ToBTC()))
	return mined, balance, nil
}
