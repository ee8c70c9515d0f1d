// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, userID, initialBalance int64) (domain.Account, error)
	Close(ctx context.Context, userID int64, accountNumber string) (domain.Account, error)
	List(ctx context.Context, userID int64) ([]domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type createRequest struct {
	UserID         int64  `json:"user_id" binding:"required,min=1"`
	InitialBalance *int64 `json:"initial_balance" binding:"required,min=0"`
}

type createdAccount struct {
	UserID        int64     `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	account, err := h.service.Create(ctx, req.UserID, *req.InitialBalance)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrMaxAccountsPerUser:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: createdAccount{
			UserID:        account.UserID,
			AccountNumber: account.Number,
			RegisteredAt:  account.RegisteredAt,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type closeRequest struct {
	UserID        int64  `json:"user_id" binding:"required,min=1"`
	AccountNumber string `json:"account_number" binding:"required,len=10"`
}

type closedAccount struct {
	UserID         int64     `json:"user_id"`
	AccountNumber  string    `json:"account_number"`
	UnregisteredAt time.Time `json:"unregistered_at"`
}

// Close handles http request to unregister an account.
func (h *Handler) Close(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req closeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	account, err := h.service.Close(ctx, req.UserID, req.AccountNumber)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrAccountAlreadyClosed:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrOwnerMismatch, domain.ErrBalanceNotEmpty:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: closedAccount{
			UserID:         account.UserID,
			AccountNumber:  account.Number,
			UnregisteredAt: account.UnregisteredAt,
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	UserID int64 `form:"user_id" binding:"required,min=1"`
}

type accountInfo struct {
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

// List handles http request to list the user's accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	accounts, err := h.service.List(ctx, req.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	infos := make([]accountInfo, 0, len(accounts))
	for _, a := range accounts {
		infos = append(infos, accountInfo{
			AccountNumber: a.Number,
			Balance:       a.Balance,
		})
	}

	gctx.JSON(http.StatusOK, web.Response{Data: infos})
}
