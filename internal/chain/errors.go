package chain

import "errors"

var (
	// ErrNotFound marks a transaction, output or block the node cannot resolve.
	ErrNotFound = errors.New("not found")

	// ErrUnconfirmed marks a transaction that has no confirming block yet.
	ErrUnconfirmed = errors.New("transaction not confirmed")
)
