package domain

import "errors"

var (
	// ErrSameAccount indicates a transfer where sender and receiver are the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
	// ErrSenderNotFound indicates that the sender account is not found.
	ErrSenderNotFound = errors.New("sender account not found")
	// ErrReceiverNotFound indicates that the receiver account is not found.
	ErrReceiverNotFound = errors.New("receiver account not found")
	// ErrSenderInactive indicates that the sender account is not active.
	ErrSenderInactive = errors.New("sender account is not active")
	// ErrReceiverInactive indicates that the receiver account is not active.
	ErrReceiverInactive = errors.New("receiver account is not active")
	// ErrNotAccountOwner indicates that the requester may not debit the sender account.
	ErrNotAccountOwner = errors.New("not allowed to transfer from this account")
	// ErrBelowMinimum indicates an amount below the per-transfer minimum.
	ErrBelowMinimum = errors.New("amount below minimum transfer")
	// ErrExceedsPerTransferCap indicates an amount above the per-transfer maximum.
	ErrExceedsPerTransferCap = errors.New("amount exceeds per-transfer maximum")
	// ErrExceedsDailyLimit indicates that the transfer would breach the sender's daily cap.
	ErrExceedsDailyLimit = errors.New("daily transfer limit exceeded")
	// ErrInsufficientFunds indicates that the sender balance does not cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// CreateTransferParams is the input data for one transfer request.
type CreateTransferParams struct {
	SenderAccount   string `json:"sender_account"`
	ReceiverAccount string `json:"receiver_account"`
	Amount          int64  `json:"amount"`
}

// CommitTransferParams is the input data for the atomic commit step.
type CommitTransferParams struct {
	SenderAccount   string `json:"sender_account"`
	ReceiverAccount string `json:"receiver_account"`
	Amount          int64  `json:"amount"`
	ReferenceID     string `json:"reference_id"`
}

// TransferReceipt is the result of a committed transfer.
type TransferReceipt struct {
	ReferenceID string `json:"reference_id"`
	DebitedFrom string `json:"debited_from"`
	CreditedTo  string `json:"credited_to"`
	Amount      int64  `json:"amount"`
}
