package transactionrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/userrepo"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"

	_ "github.com/lib/pq"
)

var (
	testRepo        *RepoPGS
	testAccountRepo *accountrepo.RepoPGS
	testUserRepo    *userrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testAccountRepo = accountrepo.NewRepoPGS(testDB)
	testUserRepo = userrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomAccount(t *testing.T, balance int64) domain.Account {
	user, err := testUserRepo.Create(context.Background(), randompkg.Owner())
	require.NoError(t, err)

	account, err := testAccountRepo.Create(context.Background(), domain.CreateAccountParams{
		UserID:       user.ID,
		Number:       randompkg.AccountNumber(),
		Status:       domain.StatusInUse,
		Balance:      balance,
		RegisteredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, account)

	return account
}

func useParams(account domain.Account, amount int64) domain.CreateTransactionParams {
	return domain.CreateTransactionParams{
		Type:            domain.TypeUse,
		Result:          domain.ResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance - amount,
		TransactionID:   randompkg.TransactionID(),
		TransactedAt:    time.Now().UTC(),
	}
}

func TestCreate(t *testing.T) {
	account := createRandomAccount(t, 1_000)
	arg := domain.CreateTransactionParams{
		Type:            domain.TypeUse,
		Result:          domain.ResultFail,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          300,
		BalanceSnapshot: account.Balance,
		TransactionID:   randompkg.TransactionID(),
		TransactedAt:    time.Now().UTC(),
	}

	transaction, err := testRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, transaction)

	require.Equal(t, arg.Type, transaction.Type)
	require.Equal(t, arg.Result, transaction.Result)
	require.Equal(t, arg.AccountID, transaction.AccountID)
	require.Equal(t, arg.AccountNumber, transaction.AccountNumber)
	require.Equal(t, arg.Amount, transaction.Amount)
	require.Equal(t, arg.BalanceSnapshot, transaction.BalanceSnapshot)
	require.Equal(t, arg.TransactionID, transaction.TransactionID)
	require.NotZero(t, transaction.ID)

	// A failure record must not move the balance.
	account2, err := testAccountRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Balance, account2.Balance)
}

func TestCreateConstraintViolations(t *testing.T) {
	account := createRandomAccount(t, 1_000)

	testCases := []struct {
		name    string
		arg     domain.CreateTransactionParams
		wantErr error
	}{
		{
			name: "ErrAccountNotFound",
			arg: domain.CreateTransactionParams{
				Type:          domain.TypeUse,
				Result:        domain.ResultSuccess,
				AccountID:     -1,
				Amount:        300,
				TransactionID: randompkg.TransactionID(),
				TransactedAt:  time.Now().UTC(),
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "ErrInvalidAmount",
			arg: domain.CreateTransactionParams{
				Type:          domain.TypeUse,
				Result:        domain.ResultSuccess,
				AccountID:     account.ID,
				Amount:        0,
				TransactionID: randompkg.TransactionID(),
				TransactedAt:  time.Now().UTC(),
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			transaction, err := testRepo.Create(context.Background(), tc.arg)
			require.EqualError(t, err, tc.wantErr.Error())
			require.Empty(t, transaction)
		})
	}
}

func TestGet(t *testing.T) {
	account := createRandomAccount(t, 1_000)

	created, err := testRepo.Use(context.Background(), useParams(account, 300))
	require.NoError(t, err)

	transaction, err := testRepo.Get(context.Background(), created.TransactionID)
	require.NoError(t, err)

	require.Equal(t, created.ID, transaction.ID)
	require.Equal(t, created.Type, transaction.Type)
	require.Equal(t, created.Result, transaction.Result)
	require.Equal(t, account.Number, transaction.AccountNumber)
	require.Equal(t, created.Amount, transaction.Amount)
	require.Equal(t, created.BalanceSnapshot, transaction.BalanceSnapshot)
	require.WithinDuration(t, created.TransactedAt, transaction.TransactedAt, time.Second)
}

func TestGetNotFound(t *testing.T) {
	transaction, err := testRepo.Get(context.Background(), randompkg.TransactionID())
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
	require.Empty(t, transaction)
}

func TestUse(t *testing.T) {
	account := createRandomAccount(t, 1_000)

	transaction, err := testRepo.Use(context.Background(), useParams(account, 300))
	require.NoError(t, err)
	require.Equal(t, int64(700), transaction.BalanceSnapshot)

	account2, err := testAccountRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(700), account2.Balance)
}

func TestUseInsufficientBalance(t *testing.T) {
	account := createRandomAccount(t, 100)

	transaction, err := testRepo.Use(context.Background(), useParams(account, 300))
	require.EqualError(t, err, domain.ErrInsufficientBalance.Error())
	require.Empty(t, transaction)

	// The failed debit must leave no transaction row nor balance change.
	account2, err := testAccountRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Balance, account2.Balance)
}

func TestCancel(t *testing.T) {
	account := createRandomAccount(t, 1_000)

	used, err := testRepo.Use(context.Background(), useParams(account, 300))
	require.NoError(t, err)

	arg := domain.CreateTransactionParams{
		Type:            domain.TypeCancel,
		Result:          domain.ResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          used.Amount,
		BalanceSnapshot: used.BalanceSnapshot + used.Amount,
		TransactionID:   randompkg.TransactionID(),
		TransactedAt:    time.Now().UTC(),
	}

	transaction, err := testRepo.Cancel(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, account.Balance, transaction.BalanceSnapshot)

	account2, err := testAccountRepo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Balance, account2.Balance)
}
