package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/regtestlabs/txprovenance/internal/model"
)

// ConvertTransaction maps a decoded RPC transaction into the domain model,
// preserving vout order.
func ConvertTransaction(src *btcjson.TxRawResult, decoder *ScriptDecoder) (*model.Transaction, error) {
	inputs := make([]model.Input, 0, len(src.Vin))
	for _, vin := range src.Vin {
		inputs = append(inputs, model.Input{
			Prev: model.OutputRef{
				TxID: vin.Txid,
				Vout: vin.Vout,
			},
			Coinbase: vin.IsCoinBase(),
		})
	}

	outputs := make([]model.Output, 0, len(src.Vout))
	for idx, vout := range src.Vout {
		out, err := ConvertOutput(src.Txid, idx, vout, decoder)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	return &model.Transaction{
		TxID:    src.Txid,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// ConvertOutput maps one decoded RPC output into the domain model. Values
// are converted to satoshis immediately so later arithmetic is exact.
func ConvertOutput(txid string, idx int, vout btcjson.Vout, decoder *ScriptDecoder) (model.Output, error) {
	if vout.Value < 0 {
		return model.Output{}, fmt.Errorf("tx %s output %d negative value: %f", txid, idx, vout.Value)
	}
	value, err := btcutil.NewAmount(vout.Value)
	if err != nil {
		return model.Output{}, fmt.Errorf("tx %s output %d convert value: %w", txid, idx, err)
	}
	address, err := decoder.Address(vout)
	if err != nil {
		return model.Output{}, fmt.Errorf("decode address for tx %s output %d: %w", txid, idx, err)
	}
	return model.Output{Value: value, Address: address}, nil
}
