package ledgerrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/errorspkg"
)

// Read-only consumers of the ledger (transaction history, dashboards)
// go through the queries below. None of them mutates state.

const listByUserQuery = `
SELECT
	t.id, t.reference_id, t.sender_account, t.receiver_account, t.amount, t.status, t.timestamp
FROM transactions t
WHERE
    t.sender_account IN (SELECT account_number FROM accounts WHERE user_id = $1)
    OR t.receiver_account IN (SELECT account_number FROM accounts WHERE user_id = $1)
ORDER BY t.timestamp DESC
LIMIT $2
`

// ListByUser returns the newest transactions touching any of the user's
// accounts, most recent first.
func (r *RepoPGS) ListByUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, listByUserQuery, userID, limit)
}

const listAllQuery = `
SELECT
	id, reference_id, sender_account, receiver_account, amount, status, timestamp
FROM transactions
ORDER BY timestamp DESC
LIMIT $1
`

// ListAll returns the newest transactions across all accounts, most recent first.
func (r *RepoPGS) ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, listAllQuery, limit)
}

func (r *RepoPGS) listTransactions(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.ReferenceID,
			&t.SenderAccount,
			&t.ReceiverAccount,
			&t.Amount,
			&t.Status,
			&t.Timestamp,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const accountAggregatesByUserQuery = `
SELECT COUNT(id), COALESCE(SUM(balance), 0)
FROM accounts
WHERE user_id = $1
`

// AccountAggregatesByUser returns the number of accounts and the sum of
// balances held by one user.
func (r *RepoPGS) AccountAggregatesByUser(ctx context.Context, userID int64) (count int64, totalBalance int64, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, accountAggregatesByUserQuery, userID)

	if err := row.Scan(&count, &totalBalance); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return count, totalBalance, nil
}

const accountAggregatesQuery = `
SELECT COUNT(id), COALESCE(SUM(balance), 0)
FROM accounts
`

// AccountAggregates returns the total number of accounts and the sum of
// all balances in the ledger.
func (r *RepoPGS) AccountAggregates(ctx context.Context) (count int64, totalBalance int64, err error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, accountAggregatesQuery)

	if err := row.Scan(&count, &totalBalance); err != nil {
		l.Error().Err(err).Send()
		return 0, 0, errorspkg.ErrInternal
	}

	return count, totalBalance, nil
}
