// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/clockpkg"
	"github.com/rs/zerolog"
)

// TransactionRepo provides data access layer interface needed by transaction service layer.
//
// Use and Cancel apply the balance change and append the record within a
// single database transaction.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type TransactionRepo interface {
	Use(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Cancel(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, transactionID string) (domain.Transaction, error)
}

// AccountRepo provides account lookup needed by transaction service layer.
type AccountRepo interface {
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
}

// UserRepo provides user lookup needed by transaction service layer.
type UserRepo interface {
	Get(ctx context.Context, id int64) (domain.AccountUser, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo             TransactionRepo
	accountRepo      AccountRepo
	userRepo         UserRepo
	clock            clockpkg.Clock
	newTransactionID func() string
}

// New returns transaction service struct to manage transaction business logic.
func New(tr TransactionRepo, ar AccountRepo, ur UserRepo, clock clockpkg.Clock, newTransactionID func() string) *Service {
	return &Service{
		repo:             tr,
		accountRepo:      ar,
		userRepo:         ur,
		clock:            clock,
		newTransactionID: newTransactionID,
	}
}

// Use debits the account balance by amount and records the movement.
func (s *Service) Use(ctx context.Context, userID int64, accountNumber string, amount int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return domain.Transaction{}, err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := validateUse(user, &account, amount); err != nil {
		l.Info().Err(err).Str("account_number", accountNumber).Send()
		return domain.Transaction{}, err
	}

	return s.repo.Use(ctx, domain.CreateTransactionParams{
		Type:            domain.TypeUse,
		Result:          domain.ResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactionID:   s.newTransactionID(),
		TransactedAt:    s.clock.Now(),
	})
}

// validateUse debits the in-memory account so that the entity invariant is
// enforced before any persistence; the repo re-asserts it inside the
// database transaction.
func validateUse(user domain.AccountUser, account *domain.Account, amount int64) error {
	if account.UserID != user.ID {
		return domain.ErrOwnerMismatch
	}

	if account.Status != domain.StatusInUse {
		return domain.ErrAccountClosed
	}

	return account.Debit(amount)
}

// SaveFailedUse records a use attempt that failed downstream.
// The account balance is left untouched; the snapshot is the current balance.
func (s *Service) SaveFailedUse(ctx context.Context, accountNumber string, amount int64) error {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, domain.CreateTransactionParams{
		Type:            domain.TypeUse,
		Result:          domain.ResultFail,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactionID:   s.newTransactionID(),
		TransactedAt:    s.clock.Now(),
	})

	return err
}

// Cancel credits the full amount of a previous use back to the account
// and records the reversal.
func (s *Service) Cancel(ctx context.Context, transactionID, accountNumber string, amount int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	original, err := s.repo.Get(ctx, transactionID)
	if err != nil {
		return domain.Transaction{}, err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := s.validateCancel(original, &account, amount); err != nil {
		l.Info().Err(err).Str("transaction_id", transactionID).Send()
		return domain.Transaction{}, err
	}

	return s.repo.Cancel(ctx, domain.CreateTransactionParams{
		Type:            domain.TypeCancel,
		Result:          domain.ResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactionID:   s.newTransactionID(),
		TransactedAt:    s.clock.Now(),
	})
}

func (s *Service) validateCancel(original domain.Transaction, account *domain.Account, amount int64) error {
	if original.AccountID != account.ID {
		return domain.ErrTransactionAccountMismatch
	}

	if original.Type != domain.TypeUse || original.Result != domain.ResultSuccess {
		return domain.ErrNotCancelable
	}

	if original.Amount != amount {
		return domain.ErrPartialCancelNotAllowed
	}

	if original.TransactedAt.Before(s.clock.Now().Add(-domain.CancelWindow)) {
		return domain.ErrCancelWindowExpired
	}

	return account.Credit(amount)
}

// SaveFailedCancel records a cancel attempt that failed downstream.
func (s *Service) SaveFailedCancel(ctx context.Context, accountNumber string, amount int64) error {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, domain.CreateTransactionParams{
		Type:            domain.TypeCancel,
		Result:          domain.ResultFail,
		AccountID:       account.ID,
		AccountNumber:   account.Number,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
		TransactionID:   s.newTransactionID(),
		TransactedAt:    s.clock.Now(),
	})

	return err
}

// Get returns the transaction with the given opaque transaction id.
func (s *Service) Get(ctx context.Context, transactionID string) (domain.Transaction, error) {
	return s.repo.Get(ctx, transactionID)
}
