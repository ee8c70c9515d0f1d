// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

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

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Use(ctx context.Context, userID int64, accountNumber string, amount int64) (domain.Transaction, error)
	SaveFailedUse(ctx context.Context, accountNumber string, amount int64) error
	Cancel(ctx context.Context, transactionID, accountNumber string, amount int64) (domain.Transaction, error)
	SaveFailedCancel(ctx context.Context, accountNumber string, amount int64) error
	Get(ctx context.Context, transactionID string) (domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type transactionResult struct {
	AccountNumber     string    `json:"account_number"`
	TransactionResult string    `json:"transaction_result"`
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount"`
	TransactedAt      time.Time `json:"transacted_at"`
}

func newTransactionResult(t domain.Transaction) transactionResult {
	return transactionResult{
		AccountNumber:     t.AccountNumber,
		TransactionResult: t.Result,
		TransactionID:     t.TransactionID,
		Amount:            t.Amount,
		TransactedAt:      t.TransactedAt,
	}
}

type useRequest struct {
	UserID        int64  `json:"user_id" binding:"required,min=1"`
	AccountNumber string `json:"account_number" binding:"required,len=10"`
	Amount        int64  `json:"amount" binding:"required,min=10,max=1000000000"`
}

// Use handles http request to use account balance.
// When the use fails on a business rule the failed attempt is recorded, so
// that the ledger keeps every movement attempt against a known account.
func (h *Handler) Use(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req useRequest
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

	transaction, err := h.service.Use(ctx, req.UserID, req.AccountNumber, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrOwnerMismatch, domain.ErrAccountClosed,
			domain.ErrInsufficientBalance, domain.ErrInvalidAmount:
			h.recordFailedUse(ctx, req.AccountNumber, req.Amount)
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: newTransactionResult(transaction)})
}

func (h *Handler) recordFailedUse(ctx context.Context, accountNumber string, amount int64) {
	if err := h.service.SaveFailedUse(ctx, accountNumber, amount); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account_number", accountNumber).
			Msg("recording failed use")
	}
}

type cancelRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required,len=10"`
	Amount        int64  `json:"amount" binding:"required,min=10,max=1000000000"`
}

// Cancel handles http request to cancel a previous balance use in full.
func (h *Handler) Cancel(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req cancelRequest
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

	transaction, err := h.service.Cancel(ctx, req.TransactionID, req.AccountNumber, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrTransactionNotFound, domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrTransactionAccountMismatch, domain.ErrNotCancelable,
			domain.ErrPartialCancelNotAllowed, domain.ErrCancelWindowExpired,
			domain.ErrInvalidAmount:
			h.recordFailedCancel(ctx, req.AccountNumber, req.Amount)
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: newTransactionResult(transaction)})
}

func (h *Handler) recordFailedCancel(ctx context.Context, accountNumber string, amount int64) {
	if err := h.service.SaveFailedCancel(ctx, accountNumber, amount); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account_number", accountNumber).
			Msg("recording failed cancel")
	}
}

type getRequest struct {
	TransactionID string `uri:"transaction_id" binding:"required"`
}

type transactionDetails struct {
	AccountNumber     string    `json:"account_number"`
	TransactionType   string    `json:"transaction_type"`
	TransactionResult string    `json:"transaction_result"`
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount"`
	BalanceSnapshot   int64     `json:"balance_snapshot"`
	TransactedAt      time.Time `json:"transacted_at"`
}

// Get handles http request to query a transaction by its opaque id.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	transaction, err := h.service.Get(ctx, req.TransactionID)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		Data: transactionDetails{
			AccountNumber:     transaction.AccountNumber,
			TransactionType:   transaction.Type,
			TransactionResult: transaction.Result,
			TransactionID:     transaction.TransactionID,
			Amount:            transaction.Amount,
			BalanceSnapshot:   transaction.BalanceSnapshot,
			TransactedAt:      transaction.TransactedAt,
		},
	}

	gctx.JSON(http.StatusOK, res)
}
