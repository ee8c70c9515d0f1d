// Package userservice manages business logic layer of account users.
package userservice

import (
	"context"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, name string) (domain.AccountUser, error)
	Get(ctx context.Context, id int64) (domain.AccountUser, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// Create creates and returns a user.
func (s *Service) Create(ctx context.Context, name string) (domain.AccountUser, error) {
	return s.repo.Create(ctx, strings.TrimSpace(name))
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.AccountUser, error) {
	return s.repo.Get(ctx, id)
}
