// Package ledgerrepo manages the ledger: account balances and the
// append-only transaction log. CommitTransfer is the only sanctioned
// mutation path for balances.
package ledgerrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/limitpolicy"
	"github.com/corebank/corebank/pkg/dbpkg"
	"github.com/corebank/corebank/pkg/errorspkg"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns ledger RepoPGS scoped to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns ledger RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const getAccountQuery = `
SELECT
	id, user_id, account_number, account_type, balance, status, created_at
FROM accounts
WHERE account_number = $1
`

// GetAccount returns the account with the given account number.
func (r *RepoPGS) GetAccount(ctx context.Context, accountNumber string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getAccountQuery, accountNumber)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.AccountNumber,
		&a.AccountType,
		&a.Balance,
		&a.Status,
		&a.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const sumSuccessfulDebitsQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM transactions
WHERE
    sender_account = $1
    AND status = 'success'
    AND timestamp >= $2
    AND timestamp < $3
`

// SumSuccessfulDebits sums the amounts of successful transfers debited
// from the account within [from, to).
func (r *RepoPGS) SumSuccessfulDebits(ctx context.Context, accountNumber string, from, to time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, sumSuccessfulDebitsQuery, accountNumber, from, to)

	var total int64

	if err := row.Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const lockAccountQuery = `
SELECT balance, status
FROM accounts
WHERE account_number = $1
FOR UPDATE
`

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE account_number = $2
`

const insertTransactionQuery = `
INSERT INTO
    transactions (reference_id, sender_account, receiver_account, amount, status)
VALUES
    ($1, $2, $3, $4, 'success')
RETURNING id, reference_id, sender_account, receiver_account, amount, status, timestamp
`

// CommitTransfer debits the sender, credits the receiver and appends
// the log entry as one atomic unit.
//
// Both account rows are locked in lexicographic account-number order to
// avoid deadlocks between mirror-image transfers. The limit policy is
// re-evaluated against the locked balance and the day's debit total so
// concurrent transfers cannot jointly overdraw the sender or breach its
// daily cap against stale reads.
func (r *RepoPGS) CommitTransfer(ctx context.Context, arg domain.CommitTransferParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transaction

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	senderBalance, err := lockAccounts(ctx, tx, arg.SenderAccount, arg.ReceiverAccount)
	if err != nil {
		if err != domain.ErrSenderInactive && err != domain.ErrReceiverInactive &&
			err != domain.ErrSenderNotFound && err != domain.ErrReceiverNotFound {
			l.Error().Err(err).Send()
		}

		return result, err
	}

	from, to := limitpolicy.DayWindowUTC(time.Now())

	debitedToday, err := NewTxRepoPGS(tx).SumSuccessfulDebits(ctx, arg.SenderAccount, from, to)
	if err != nil {
		return result, err
	}

	err = limitpolicy.Evaluate(limitpolicy.Inputs{
		Amount:        arg.Amount,
		SenderBalance: senderBalance,
		DebitedToday:  debitedToday,
	})
	if err != nil {
		return result, err
	}

	if _, err = tx.ExecContext(ctx, addBalanceQuery, -arg.Amount, arg.SenderAccount); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "accounts_balance_check" {
			return result, domain.ErrInsufficientFunds
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	if _, err = tx.ExecContext(ctx, addBalanceQuery, arg.Amount, arg.ReceiverAccount); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	row := tx.QueryRowContext(ctx, insertTransactionQuery,
		arg.ReferenceID,
		arg.SenderAccount,
		arg.ReceiverAccount,
		arg.Amount,
	)

	err = row.Scan(
		&result.ID,
		&result.ReferenceID,
		&result.SenderAccount,
		&result.ReceiverAccount,
		&result.Amount,
		&result.Status,
		&result.Timestamp,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "transactions_reference_id_key" {
			return result, domain.ErrDuplicateReference
		}

		l.Error().Err(err).Send()

		return result, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}

// lockAccounts acquires row locks on both accounts in lexicographic
// account-number order and returns the sender's locked balance.
func lockAccounts(ctx context.Context, tx *sql.Tx, senderAccount, receiverAccount string) (int64, error) {
	first, second := senderAccount, receiverAccount
	if receiverAccount < senderAccount {
		first, second = receiverAccount, senderAccount
	}

	var senderBalance int64

	for _, number := range []string{first, second} {
		var (
			balance int64
			status  domain.AccountStatus
		)

		row := tx.QueryRowContext(ctx, lockAccountQuery, number)

		if err := row.Scan(&balance, &status); err != nil {
			if err == sql.ErrNoRows {
				if number == senderAccount {
					return 0, domain.ErrSenderNotFound
				}

				return 0, domain.ErrReceiverNotFound
			}

			return 0, errorspkg.ErrInternal
		}

		if status != domain.StatusActive {
			if number == senderAccount {
				return 0, domain.ErrSenderInactive
			}

			return 0, domain.ErrReceiverInactive
		}

		if number == senderAccount {
			senderBalance = balance
		}
	}

	return senderBalance, nil
}
