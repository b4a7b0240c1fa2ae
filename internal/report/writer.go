// Package report renders resolved provenance records into the fixed-layout
// report artifact.
package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/regtestlabs/txprovenance/internal/model"
)

// Writer serializes provenance records to a ten-line text file. An existing
// file at the path is replaced.
type Writer struct {
	path string
}

// NewWriter constructs a Writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write renders the record and replaces the artifact at the configured path.
// The content is rendered fully in memory and written in one operation, so a
// failed resolution upstream never leaves a partial artifact behind.
func (w *Writer) Write(record model.Record) error {
	var b strings.Builder
	b.WriteString(record.TxID + "\n")
	b.WriteString(record.FundingAddress + "\n")
	b.WriteString(formatAmount(record.FundingAmount) + "\n")
	b.WriteString(record.RecipientAddress + "\n")
	b.WriteString(formatAmount(record.RecipientAmount) + "\n")
	b.WriteString(record.ChangeAddress + "\n")
	b.WriteString(formatAmount(record.ChangeAmount) + "\n")
	b.WriteString(formatAmount(record.Fee) + "\n")
	b.WriteString(strconv.FormatInt(record.BlockHeight, 10) + "\n")
	b.WriteString(record.BlockHash + "\n")

	if err := os.WriteFile(w.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", w.path, err)
	}
	return nil
}

// formatAmount renders a satoshi amount as BTC with exactly 8 fractional
// digits, the currency's atomic-unit granularity.
func formatAmount(v btcutil.Amount) string {
	return strconv.FormatFloat(v.ToBTC(), 'f', 8, 64)
}
