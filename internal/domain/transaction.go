package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateReference indicates a collision on the generated reference id.
	ErrDuplicateReference = errors.New("duplicate transaction reference")
)

// TransactionStatus is the recorded outcome of a transfer.
type TransactionStatus string

const (
	// StatusSuccess marks a committed transfer.
	StatusSuccess TransactionStatus = "success"
	// StatusFailed exists in the schema for completeness; the engine
	// records successful transfers only.
	StatusFailed TransactionStatus = "failed"
)

// Transaction is one immutable ledger entry. Entries reference accounts
// by number so that freezing or closing an account never invalidates
// historical rows. The log is append only.
type Transaction struct {
	ID              int64             `json:"id"`
	ReferenceID     string            `json:"reference_id"`
	SenderAccount   string            `json:"sender_account"`
	ReceiverAccount string            `json:"receiver_account"`
	Amount          int64             `json:"amount"`
	Status          TransactionStatus `json:"status"`
	Timestamp       time.Time         `json:"timestamp"`
}
