package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebit(t *testing.T) {
	testCases := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		wantError   error
	}{
		{name: "OK", balance: 1000, amount: 300, wantBalance: 700},
		{name: "FullBalance", balance: 1000, amount: 1000, wantBalance: 0},
		{name: "ExceedsBalance", balance: 1000, amount: 2000, wantBalance: 1000, wantError: ErrInsufficientBalance},
		{name: "ZeroAmount", balance: 1000, amount: 0, wantBalance: 1000, wantError: ErrInvalidAmount},
		{name: "NegativeAmount", balance: 1000, amount: -5, wantBalance: 1000, wantError: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := Account{Status: StatusInUse, Balance: tc.balance}

			err := account.Debit(tc.amount)

			require.ErrorIs(t, err, tc.wantError)
			require.Equal(t, tc.wantBalance, account.Balance)
		})
	}
}

func TestCredit(t *testing.T) {
	testCases := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		wantError   error
	}{
		{name: "OK", balance: 700, amount: 300, wantBalance: 1000},
		{name: "ZeroAmount", balance: 700, amount: 0, wantBalance: 700, wantError: ErrInvalidAmount},
		{name: "NegativeAmount", balance: 700, amount: -300, wantBalance: 700, wantError: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := Account{Status: StatusInUse, Balance: tc.balance}

			err := account.Credit(tc.amount)

			require.ErrorIs(t, err, tc.wantError)
			require.Equal(t, tc.wantBalance, account.Balance)
		})
	}
}

func TestDebitCreditRoundTrip(t *testing.T) {
	account := Account{Status: StatusInUse, Balance: 1000}

	require.NoError(t, account.Debit(300))
	require.NoError(t, account.Credit(300))
	require.Equal(t, int64(1000), account.Balance)
}

func TestClose(t *testing.T) {
	now := time.Now().UTC()

	testCases := []struct {
		name      string
		account   Account
		wantError error
	}{
		{name: "OK", account: Account{Status: StatusInUse, Balance: 0}},
		{name: "AlreadyClosed", account: Account{Status: StatusUnregistered, Balance: 0}, wantError: ErrAccountAlreadyClosed},
		{name: "BalanceNotEmpty", account: Account{Status: StatusInUse, Balance: 1}, wantError: ErrBalanceNotEmpty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Close(now)

			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, StatusUnregistered, tc.account.Status)
			require.Equal(t, now, tc.account.UnregisteredAt)
		})
	}
}
