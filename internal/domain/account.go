package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountNumberTaken indicates that the generated account number is already in use.
	ErrAccountNumberTaken = errors.New("account number already taken")
	// ErrOwnerMismatch indicates that the account is owned by another user.
	ErrOwnerMismatch = errors.New("account owner mismatch")
	// ErrAccountClosed indicates an operation on an unregistered account.
	ErrAccountClosed = errors.New("account is unregistered")
	// ErrAccountAlreadyClosed indicates a repeated attempt to unregister an account.
	ErrAccountAlreadyClosed = errors.New("account is already unregistered")
	// ErrBalanceNotEmpty indicates an attempt to unregister an account holding balance.
	ErrBalanceNotEmpty = errors.New("account balance is not empty")
	// ErrInsufficientBalance indicates that the amount exceeds the account balance.
	ErrInsufficientBalance = errors.New("amount exceeds account balance")
	// ErrMaxAccountsPerUser indicates that the user holds the maximum number of accounts.
	ErrMaxAccountsPerUser = errors.New("maximum number of accounts per user reached")
	// ErrInvalidAmount indicates a non-positive or otherwise malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Account statuses. The only transition is StatusInUse to StatusUnregistered.
const (
	StatusInUse        = "IN_USE"
	StatusUnregistered = "UNREGISTERED"
)

const (
	// MaxAccountsPerUser limits how many accounts a single user may hold.
	MaxAccountsPerUser = 10
	// AccountNumberLength is the exact length of an account number.
	AccountNumberLength = 10
)

// Account holds a named ledger of a single user.
// Balance is an integer in the smallest currency unit and never goes negative.
type Account struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Number         string    `json:"account_number"`
	Status         string    `json:"status"`
	Balance        int64     `json:"balance"`
	RegisteredAt   time.Time `json:"registered_at"`
	UnregisteredAt time.Time `json:"unregistered_at,omitempty"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	UserID       int64
	Number       string
	Status       string
	Balance      int64
	RegisteredAt time.Time
}

// Debit subtracts amount from the account balance.
// The balance invariant is asserted here as well, not only by callers.
func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > a.Balance {
		return ErrInsufficientBalance
	}

	a.Balance -= amount

	return nil
}

// Credit adds amount to the account balance.
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.Balance += amount

	return nil
}

// Close unregisters the account and stamps the closure time.
func (a *Account) Close(now time.Time) error {
	if a.Status == StatusUnregistered {
		return ErrAccountAlreadyClosed
	}

	if a.Balance != 0 {
		return ErrBalanceNotEmpty
	}

	a.Status = StatusUnregistered
	a.UnregisteredAt = now

	return nil
}
