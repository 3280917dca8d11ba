// Package transactiondelivery manages delivery layer of transaction history.
package transactiondelivery

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

const defaultHistoryLimit = 50

// Ledger provides the read side of the transaction log.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Ledger interface {
	ListByUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error)
	ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	ledger Ledger
}

// NewHandler returns transaction handler.
func NewHandler(ledger Ledger) *Handler {
	return &Handler{ledger: ledger}
}

type listRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=500"`
}

type listResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// ListMine handles http request to list transactions touching the
// requester's accounts.
func (h *Handler) ListMine(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	limit, ok := h.bindLimit(gctx)
	if !ok {
		return
	}

	transactions, err := h.ledger.ListByUser(ctx, requester.UserID, limit)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, listResponse{Transactions: transactions})
}

// ListAll handles http request to list transactions across all accounts.
func (h *Handler) ListAll(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	limit, ok := h.bindLimit(gctx)
	if !ok {
		return
	}

	transactions, err := h.ledger.ListAll(ctx, limit)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, listResponse{Transactions: transactions})
}

func (h *Handler) bindLimit(gctx *gin.Context) (int32, bool) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return 0, false
	}

	if req.Limit == 0 {
		req.Limit = defaultHistoryLimit
	}

	return req.Limit, true
}
