package chain

import "github.com/btcsuite/btcd/btcutil"

// ComputeFee derives the network fee from value conservation: the funding
// amount minus what the classified outputs account for. Arithmetic is exact
// in satoshis. The unsigned magnitude is returned so a classification miss
// cannot put a negative figure in the report.
func ComputeFee(funding, recipient, change btcutil.Amount) btcutil.Amount {
	fee := funding - (recipient + change)
	if fee < 0 {
		fee = -fee
	}
	return fee
}
