package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionAccountMismatch indicates that the transaction belongs to another account.
	ErrTransactionAccountMismatch = errors.New("transaction account mismatch")
	// ErrNotCancelable indicates an attempt to cancel anything but a successful use.
	ErrNotCancelable = errors.New("transaction can not be canceled")
	// ErrPartialCancelNotAllowed indicates that the cancel amount differs from the used amount.
	ErrPartialCancelNotAllowed = errors.New("partial cancel is not allowed")
	// ErrCancelWindowExpired indicates that the transaction is too old to cancel.
	ErrCancelWindowExpired = errors.New("cancel window expired")
)

// Transaction types.
const (
	TypeUse    = "USE"
	TypeCancel = "CANCEL"
)

// Transaction results.
const (
	ResultSuccess = "SUCCESS"
	ResultFail    = "FAIL"
)

// CancelWindow is how long after a use it still may be canceled.
const CancelWindow = 365 * 24 * time.Hour

// Transaction is an append-only record of one balance movement attempt.
// TransactionID is the only identifier shared outside the service;
// the storage key would expose record ordering.
type Transaction struct {
	ID              int64     `json:"-"`
	Type            string    `json:"transaction_type"`
	Result          string    `json:"transaction_result"`
	AccountID       int64     `json:"-"`
	AccountNumber   string    `json:"account_number"`
	Amount          int64     `json:"amount"`
	BalanceSnapshot int64     `json:"balance_snapshot"`
	TransactionID   string    `json:"transaction_id"`
	TransactedAt    time.Time `json:"transacted_at"`
}

// CreateTransactionParams is the input data to append a transaction record.
type CreateTransactionParams struct {
	Type            string
	Result          string
	AccountID       int64
	AccountNumber   string
	Amount          int64
	BalanceSnapshot int64
	TransactionID   string
	TransactedAt    time.Time
}
