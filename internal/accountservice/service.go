// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"strconv"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/clockpkg"
	"github.com/rs/zerolog"
)

// maxNumberAttempts bounds the generate-and-check loop for account numbers.
const maxNumberAttempts = 5

// AccountRepo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type AccountRepo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Account, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	LastCreated(ctx context.Context) (domain.Account, error)
	Close(ctx context.Context, number string, closedAt time.Time) (domain.Account, error)
}

// UserRepo provides user lookup needed by account service layer.
type UserRepo interface {
	Get(ctx context.Context, id int64) (domain.AccountUser, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo      AccountRepo
	userRepo  UserRepo
	clock     clockpkg.Clock
	newNumber func() string
}

// New returns account service struct to manage account business logic.
func New(ar AccountRepo, ur UserRepo, clock clockpkg.Clock, newNumber func() string) *Service {
	return &Service{
		repo:      ar,
		userRepo:  ur,
		clock:     clock,
		newNumber: newNumber,
	}
}

// Create opens an account for the given user with the given initial balance.
func (s *Service) Create(ctx context.Context, userID, initialBalance int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if initialBalance < 0 {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}

	count, err := s.repo.CountByUser(ctx, user.ID)
	if err != nil {
		return domain.Account{}, err
	}

	if count >= domain.MaxAccountsPerUser {
		l.Info().Int64("user_id", user.ID).Msg("maximum number of accounts reached")
		return domain.Account{}, domain.ErrMaxAccountsPerUser
	}

	// The number may still be taken by a concurrent create between the
	// uniqueness check and the insert; regenerate and retry on that race.
	for i := 0; i < maxNumberAttempts; i++ {
		number, err := s.uniqueNumber(ctx)
		if err != nil {
			return domain.Account{}, err
		}

		account, err := s.repo.Create(ctx, domain.CreateAccountParams{
			UserID:       user.ID,
			Number:       number,
			Status:       domain.StatusInUse,
			Balance:      initialBalance,
			RegisteredAt: s.clock.Now(),
		})
		if err == domain.ErrAccountNumberTaken {
			continue
		}

		if err != nil {
			return domain.Account{}, err
		}

		return account, nil
	}

	return domain.Account{}, domain.ErrAccountNumberTaken
}

// uniqueNumber generates a random account number, regenerating on collision.
// After maxNumberAttempts collisions it derives the next number from the most
// recently created account instead of retrying forever.
func (s *Service) uniqueNumber(ctx context.Context) (string, error) {
	for i := 0; i < maxNumberAttempts; i++ {
		number := s.newNumber()

		_, err := s.repo.GetByNumber(ctx, number)
		if err == domain.ErrAccountNotFound {
			return number, nil
		}

		if err != nil {
			return "", err
		}
	}

	last, err := s.repo.LastCreated(ctx)
	if err != nil {
		return "", err
	}

	n, err := strconv.ParseInt(last.Number, 10, 64)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("number", last.Number).Send()
		return "", err
	}

	return strconv.FormatInt(n+1, 10), nil
}

// Close unregisters the account with the given number.
// The account must be owned by the requesting user and hold no balance.
// The row is kept; closure only flips the status and stamps the time.
func (s *Service) Close(ctx context.Context, userID int64, accountNumber string) (domain.Account, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Account{}, err
	}

	if account.UserID != user.ID {
		return domain.Account{}, domain.ErrOwnerMismatch
	}

	if err := account.Close(s.clock.Now()); err != nil {
		return domain.Account{}, err
	}

	return s.repo.Close(ctx, account.Number, account.UnregisteredAt)
}

// List returns all accounts owned by the given user.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Account, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, user.ID)
}
