// Package dashboarddelivery manages delivery layer of the dashboards.
package dashboarddelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/dashboardservice"
	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/errorspkg"
	"github.com/corebank/corebank/pkg/jsonresponse"
)

// Service provides service layer interface needed by dashboard delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package dashboarddelivery
type Service interface {
	CustomerSummaryFor(ctx context.Context, userID int64) (dashboardservice.CustomerSummary, error)
	AdminSummaryAll(ctx context.Context) (dashboardservice.AdminSummary, error)
	RecentMine(ctx context.Context, userID int64) ([]domain.Transaction, error)
	RecentAll(ctx context.Context) ([]domain.Transaction, error)
}

// Handler facilitates dashboard delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns dashboard handler.
func NewHandler(ds Service) *Handler {
	return &Handler{service: ds}
}

type recentResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// CustomerSummary handles http request for the customer dashboard summary.
func (h *Handler) CustomerSummary(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	summary, err := h.service.CustomerSummaryFor(ctx, requester.UserID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, summary)
}

// CustomerRecent handles http request for the customer's recent transactions.
func (h *Handler) CustomerRecent(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	transactions, err := h.service.RecentMine(ctx, requester.UserID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, recentResponse{Transactions: transactions})
}

// AdminSummary handles http request for the back-office dashboard summary.
func (h *Handler) AdminSummary(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	summary, err := h.service.AdminSummaryAll(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, summary)
}

// AdminRecent handles http request for the bank-wide recent transactions.
func (h *Handler) AdminRecent(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	transactions, err := h.service.RecentAll(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, recentResponse{Transactions: transactions})
}
