package model

import "github.com/btcsuite/btcd/btcutil"

// Record is the resolved provenance of one confirmed payment transaction:
// the output that funded it, the output paid to the recipient, the output
// returned to the sender as change, and the implied network fee. Amounts are
// carried as satoshis; absent recipient or change report as an empty address
// and a zero amount.
type Record struct {
	TxID             string
	FundingAddress   string
	FundingAmount    btcutil.Amount
	RecipientAddress string
	RecipientAmount  btcutil.Amount
	ChangeAddress    string
	ChangeAmount     btcutil.Amount
	Fee              btcutil.Amount
	BlockHeight      int64
	BlockHash        string
}
