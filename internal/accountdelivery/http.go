// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/accountservice"
	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/errorspkg"
	"github.com/corebank/corebank/pkg/jsonresponse"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, requester domain.Requester, arg accountservice.CreateParams) (domain.Account, error)
	ListMine(ctx context.Context, userID int64) ([]domain.Account, error)
	SetStatus(ctx context.Context, accountNumber string, status domain.AccountStatus) (domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type createRequest struct {
	TargetEmail    string `json:"email" binding:"omitempty,email"`
	AccountType    string `json:"account_type" binding:"required,accounttype"`
	InitialDeposit int64  `json:"initial_deposit" binding:"min=0"`
}

type accountResponse struct {
	Message string         `json:"message,omitempty"`
	Account domain.Account `json:"account"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	account, err := h.service.Create(ctx, requester, accountservice.CreateParams{
		TargetEmail:    req.TargetEmail,
		AccountType:    domain.AccountType(req.AccountType),
		InitialDeposit: req.InitialDeposit,
	})
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAccountType,
			domain.ErrBelowMinimumDeposit,
			domain.ErrKYCNotApproved,
			domain.ErrAccountTypeAlreadyExists:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
		case domain.ErrCannotOpenForOther:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, accountResponse{
		Message: "Account opened successfully",
		Account: account,
	})
}

type listResponse struct {
	Accounts []domain.Account `json:"accounts"`
}

// ListMine handles http request to list the requester's accounts.
func (h *Handler) ListMine(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	accounts, err := h.service.ListMine(ctx, requester.UserID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, listResponse{Accounts: accounts})
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required,accountstatus"`
}

// SetStatus handles http request to change an account's lifecycle status.
func (h *Handler) SetStatus(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	accountNumber := gctx.Param("account_number")

	var req setStatusRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	account, err := h.service.SetStatus(ctx, accountNumber, domain.AccountStatus(req.Status))
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidAccountStatus:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, accountResponse{
		Message: "Account status updated",
		Account: account,
	})
}
