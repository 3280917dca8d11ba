// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/errorspkg"
	"github.com/corebank/corebank/pkg/jsonresponse"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, requester domain.Requester, arg domain.CreateTransferParams) (domain.TransferReceipt, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type request struct {
	SenderAccount   string `json:"sender_account" binding:"required"`
	ReceiverAccount string `json:"receiver_account" binding:"required"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
}

type response struct {
	Message     string `json:"message"`
	ReferenceID string `json:"reference_id"`
	DebitedFrom string `json:"debited_from"`
	CreditedTo  string `json:"credited_to"`
	Amount      int64  `json:"amount"`
}

// Create handles http request to transfer money between two accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	arg := domain.CreateTransferParams{
		SenderAccount:   req.SenderAccount,
		ReceiverAccount: req.ReceiverAccount,
		Amount:          req.Amount,
	}

	receipt, err := h.service.Transfer(ctx, middleware.Requester(gctx), arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrSenderNotFound,
			domain.ErrReceiverNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

			return
		case domain.ErrNotAccountOwner:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))

			return
		case
			domain.ErrSameAccount,
			domain.ErrSenderInactive,
			domain.ErrReceiverInactive,
			domain.ErrBelowMinimum,
			domain.ErrExceedsPerTransferCap,
			domain.ErrExceedsDailyLimit,
			domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{
		Message:     "Transfer successful",
		ReferenceID: receipt.ReferenceID,
		DebitedFrom: receipt.DebitedFrom,
		CreditedTo:  receipt.CreditedTo,
		Amount:      receipt.Amount,
	})
}
