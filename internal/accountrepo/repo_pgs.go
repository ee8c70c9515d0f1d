// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
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

const accountColumns = `id, user_id, number, status, balance, registered_at, unregistered_at`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a              domain.Account
		unregisteredAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Number,
		&a.Status,
		&a.Balance,
		&a.RegisteredAt,
		&unregisteredAt,
	)
	if err != nil {
		return a, err
	}

	a.UnregisteredAt = unregisteredAt.Time

	return a, nil
}

const createQuery = `
INSERT INTO
    accounts (user_id, number, status, balance, registered_at)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING ` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.UserID,
		arg.Number,
		arg.Status,
		arg.Balance,
		arg.RegisteredAt,
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_user_id_fkey":
				return a, domain.ErrUserNotFound
			case "accounts_number_key":
				return a, domain.ErrAccountNumberTaken
			case "accounts_balance_check":
				return a, domain.ErrInvalidAmount
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNumberQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE number = $1
`

// GetByNumber returns the account with the given account number.
func (r *RepoPGS) GetByNumber(ctx context.Context, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getByNumberQuery, number))
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const lastCreatedQuery = `
SELECT ` + accountColumns + `
FROM accounts
ORDER BY id DESC
LIMIT 1
`

// LastCreated returns the most recently created account.
func (r *RepoPGS) LastCreated(ctx context.Context) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, lastCreatedQuery))
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
SELECT ` + accountColumns + `
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
		var (
			a              domain.Account
			unregisteredAt sql.NullTime
		)

		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Number,
			&a.Status,
			&a.Balance,
			&a.RegisteredAt,
			&unregisteredAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		a.UnregisteredAt = unregisteredAt.Time

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countByUserQuery = `
SELECT count(*)
FROM accounts
WHERE user_id = $1
`

// CountByUser returns how many accounts the given user holds.
func (r *RepoPGS) CountByUser(ctx context.Context, userID int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	err := r.db.QueryRowContext(ctx, countByUserQuery, userID).Scan(&count)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const closeQuery = `
UPDATE accounts
SET status = $2, unregistered_at = $3
WHERE number = $1 AND status = $4
RETURNING ` + accountColumns

// Close unregisters the account with the given number.
// The status guard makes the update a no-op if another request closed it first.
func (r *RepoPGS) Close(ctx context.Context, number string, closedAt time.Time) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, closeQuery,
		number,
		domain.StatusUnregistered,
		closedAt,
		domain.StatusInUse,
	)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountAlreadyClosed
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING ` + accountColumns

// AddBalance changes the account's balance and returns the changed account.
// The accounts_balance_check constraint re-asserts that the balance stays
// non-negative even when a concurrent debit raced the caller's pre-check.
func (r *RepoPGS) AddBalance(ctx context.Context, amount int64, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, addBalanceQuery, amount, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
