package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountTypeAlreadyExists indicates that the user already has an open account of the given type.
	ErrAccountTypeAlreadyExists = errors.New("account of this type already exists")
	// ErrInvalidAccountType indicates an unknown account type.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrBelowMinimumDeposit indicates that the initial deposit is below the account type minimum.
	ErrBelowMinimumDeposit = errors.New("initial deposit below minimum for account type")
	// ErrKYCNotApproved indicates that the user has no approved KYC application.
	ErrKYCNotApproved = errors.New("KYC not approved")
	// ErrInvalidAccountStatus indicates an unknown account status.
	ErrInvalidAccountStatus = errors.New("invalid account status")
	// ErrDuplicateAccountNumber indicates a collision on the generated account number.
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	// ErrCannotOpenForOther indicates a non-admin opening an account for another user.
	ErrCannotOpenForOther = errors.New("not allowed to open an account for another user")
)

// AccountType is the closed set of account products on offer.
type AccountType string

const (
	// Savings is the default product opened on KYC approval.
	Savings AccountType = "savings"
	// Current is the checking product.
	Current AccountType = "current"
	// FixedDeposit is the term deposit product.
	FixedDeposit AccountType = "fd"
)

// MinimumDeposit returns the opening deposit requirement in minor units
// for the given account type and whether the type is known.
func MinimumDeposit(t AccountType) (int64, bool) {
	switch t {
	case Savings:
		return 1_000, true
	case Current:
		return 5_000, true
	case FixedDeposit:
		return 10_000, true
	}

	return 0, false
}

// AccountStatus is the lifecycle status of an account.
type AccountStatus string

const (
	// StatusActive allows the account to send and receive transfers.
	StatusActive AccountStatus = "active"
	// StatusFrozen blocks all movement but keeps the account on the books.
	StatusFrozen AccountStatus = "frozen"
	// StatusClosed is terminal.
	StatusClosed AccountStatus = "closed"
)

// ValidAccountStatus reports whether s is a known lifecycle status.
func ValidAccountStatus(s AccountStatus) bool {
	return s == StatusActive || s == StatusFrozen || s == StatusClosed
}

// Account holds balance data for one user account.
// Balance is an integer in minor units of the currency and never negative.
type Account struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	AccountNumber string        `json:"account_number"`
	AccountType   AccountType   `json:"account_type"`
	Balance       int64         `json:"balance"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
}

// CreateAccountParams is the input data to open an account.
type CreateAccountParams struct {
	UserID         int64       `json:"user_id"`
	AccountNumber  string      `json:"account_number"`
	AccountType    AccountType `json:"account_type"`
	InitialDeposit int64       `json:"initial_deposit"`
}
