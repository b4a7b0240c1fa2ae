package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/regtestlabs/txprovenance/internal/chain"
	"github.com/regtestlabs/txprovenance/internal/model"
)

// NodeClient implements chain.NodeClient and chain.OwnershipOracle over a
// Bitcoin Core wallet RPC endpoint. Ownership answers reflect the wallet the
// endpoint belongs to.
type NodeClient struct {
	rpc     NodeRPC
	decoder *ScriptDecoder
}

// NewNodeClient constructs the adapter over an RPC client and script decoder.
func NewNodeClient(rpc NodeRPC, decoder *ScriptDecoder) *NodeClient {
	return &NodeClient{rpc: rpc, decoder: decoder}
}

// GetTransaction fetches and decodes a transaction. The confirmation is nil
// while the transaction sits in the mempool.
func (c *NodeClient) GetTransaction(ctx context.Context, txid string) (*model.Transaction, *model.Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, nil, fmt.Errorf("parse txid %q: %w", txid, err)
	}

	info, err := c.rpc.GetTransaction(hash)
	if err != nil {
		return nil, nil, wrapRPCError("get transaction", txid, err)
	}
	raw, err := c.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, nil, wrapRPCError("get raw transaction", txid, err)
	}

	tx, err := ConvertTransaction(raw, c.decoder)
	if err != nil {
		return nil, nil, err
	}

	var conf *model.Confirmation
	if info.BlockHash != "" {
		conf = &model.Confirmation{BlockHash: info.BlockHash}
	}
	return tx, conf, nil
}

// GetOutput dereferences a prior output by fetching its creating transaction
// and selecting the referenced vout.
func (c *NodeClient) GetOutput(ctx context.Context, ref model.OutputRef) (model.Output, error) {
	if err := ctx.Err(); err != nil {
		return model.Output{}, err
	}
	hash, err := chainhash.NewHashFromStr(ref.TxID)
	if err != nil {
		return model.Output{}, fmt.Errorf("parse txid %q: %w", ref.TxID, err)
	}

	raw, err := c.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return model.Output{}, wrapRPCError("get raw transaction", ref.TxID, err)
	}
	if int(ref.Vout) >= len(raw.Vout) {
		return model.Output{}, fmt.Errorf("tx %s has no output %d: %w", ref.TxID, ref.Vout, chain.ErrNotFound)
	}
	return ConvertOutput(raw.Txid, int(ref.Vout), raw.Vout[ref.Vout], c.decoder)
}

// GetBlockHeight returns the height of the block with the given hash.
func (c *NodeClient) GetBlockHeight(ctx context.Context, blockHash string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hash, err := chainhash.NewHashFromStr(blockHash)
	if err != nil {
		return 0, fmt.Errorf("parse block hash %q: %w", blockHash, err)
	}
	block, err := c.rpc.GetBlockVerbose(hash)
	if err != nil {
		return 0, wrapRPCError("get block", blockHash, err)
	}
	return block.Height, nil
}

// IsOwned reports whether the wallet behind the RPC endpoint owns an address.
func (c *NodeClient) IsOwned(ctx context.Context, address string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := c.rpc.GetAddressInfo(address)
	if err != nil {
		return false, fmt.Errorf("get address info %s: %w", address, err)
	}
	return info.IsMine, nil
}

// wrapRPCError tags node answers that mean "no such object" with
// chain.ErrNotFound so callers can distinguish them from connectivity
// failures.
func wrapRPCError(op, subject string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCInvalidAddressOrKey {
		return fmt.Errorf("%s %s: %s: %w", op, subject, rpcErr.Message, chain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", op, subject, err)
}
