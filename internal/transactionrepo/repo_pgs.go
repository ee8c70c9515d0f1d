// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (type, result, account_id, amount, balance_snapshot, transaction_id, transacted_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, type, result, account_id, amount, balance_snapshot, transaction_id, transacted_at
`

// Create appends the transaction record and then returns it.
// There is no update or delete path; the table is an append-only ledger.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Type,
		arg.Result,
		arg.AccountID,
		arg.Amount,
		arg.BalanceSnapshot,
		arg.TransactionID,
		arg.TransactedAt,
	)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.Result,
		&t.AccountID,
		&t.Amount,
		&t.BalanceSnapshot,
		&t.TransactionID,
		&t.TransactedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_account_id_fkey":
				return t, domain.ErrAccountNotFound
			case "transactions_amount_check":
				return t, domain.ErrInvalidAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	t.AccountNumber = arg.AccountNumber

	return t, nil
}

const getQuery = `
SELECT
	t.id, t.type, t.result, t.account_id, a.number, t.amount, t.balance_snapshot, t.transaction_id, t.transacted_at
FROM transactions t
JOIN accounts a ON a.id = t.account_id
WHERE t.transaction_id = $1
`

// Get returns the transaction with the given opaque transaction id.
func (r *RepoPGS) Get(ctx context.Context, transactionID string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, transactionID)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.Result,
		&t.AccountID,
		&t.AccountNumber,
		&t.Amount,
		&t.BalanceSnapshot,
		&t.TransactionID,
		&t.TransactedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

// Use debits the account and appends the use record
// within a single dbpkg transaction.
func (r *RepoPGS) Use(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	return r.move(ctx, arg, -arg.Amount)
}

// Cancel credits the account and appends the cancel record
// within a single dbpkg transaction.
func (r *RepoPGS) Cancel(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	return r.move(ctx, arg, arg.Amount)
}

func (r *RepoPGS) move(ctx context.Context, arg domain.CreateTransactionParams, delta int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Transaction

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	transactionRepo := NewTxRepoPGS(tx)

	account, err := accountRepo.AddBalance(ctx, delta, arg.AccountID)
	if err != nil {
		return result, err
	}

	// The snapshot comes from the updated row; the caller's copy may be stale.
	arg.BalanceSnapshot = account.Balance

	result, err = transactionRepo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}
