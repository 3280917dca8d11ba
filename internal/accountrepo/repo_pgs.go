// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/dbpkg"
	"github.com/corebank/corebank/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (user_id, account_number, account_type, balance, status)
VALUES
    ($1, $2, $3, $4, 'active')
RETURNING id, user_id, account_number, account_type, balance, status, created_at
`

// Create opens the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.UserID,
		arg.AccountNumber,
		arg.AccountType,
		arg.InitialDeposit,
	)

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
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_user_id_fkey":
				return a, domain.ErrUserNotFound
			case "accounts_user_id_account_type_key":
				return a, domain.ErrAccountTypeAlreadyExists
			case "accounts_account_number_key":
				return a, domain.ErrDuplicateAccountNumber
			case "accounts_account_type_check":
				return a, domain.ErrInvalidAccountType
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, user_id, account_number, account_type, balance, status, created_at
FROM accounts
WHERE account_number = $1
`

// Get returns the account with the given account number.
func (r *RepoPGS) Get(ctx context.Context, accountNumber string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, accountNumber)

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

const listByUserQuery = `
SELECT
	id, user_id, account_number, account_type, balance, status, created_at
FROM accounts
WHERE user_id = $1
ORDER BY id
`

// ListByUser returns all accounts owned by the given user.
func (r *RepoPGS) ListByUser(ctx context.Context, userID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.AccountNumber,
			&a.AccountType,
			&a.Balance,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setStatusQuery = `
UPDATE accounts
SET status = $1
WHERE account_number = $2
RETURNING id, user_id, account_number, account_type, balance, status, created_at
`

// SetStatus changes the lifecycle status of the account and returns it.
// Balances are never touched here; that is the ledger's job.
func (r *RepoPGS) SetStatus(ctx context.Context, accountNumber string, status domain.AccountStatus) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setStatusQuery, status, accountNumber)

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

		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "accounts_status_check" {
			return a, domain.ErrInvalidAccountStatus
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const nextSequenceQuery = `SELECT nextval('account_number_seq')`

// NextSequence allocates the next account number ordinal from the
// database sequence, so two concurrent creations can never compute the
// same value.
func (r *RepoPGS) NextSequence(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var seq int64

	if err := r.db.QueryRowContext(ctx, nextSequenceQuery).Scan(&seq); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return seq, nil
}
