// Package kycdelivery manages delivery layer of KYC review.
package kycdelivery

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/pkg/errorspkg"
	"github.com/corebank/corebank/pkg/jsonresponse"
)

// Service provides service layer interface needed by KYC delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package kycdelivery
type Service interface {
	Apply(ctx context.Context, userID int64) (domain.KYCApplication, error)
	Status(ctx context.Context, userID int64) (domain.KYCApplication, error)
	UploadDocument(ctx context.Context, requester domain.Requester, kycID int64, documentType domain.DocumentType, fileName string, file io.Reader) (domain.KYCDocument, error)
	Pending(ctx context.Context) ([]domain.KYCApplication, error)
	Verify(ctx context.Context, kycID int64, decision domain.KYCStatus) (domain.KYCApplication, error)
}

// Handler facilitates KYC delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns KYC handler.
func NewHandler(ks Service) *Handler {
	return &Handler{service: ks}
}

type applicationResponse struct {
	Message     string                `json:"message,omitempty"`
	Application domain.KYCApplication `json:"application"`
}

// Apply handles http request to open a KYC application.
func (h *Handler) Apply(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	application, err := h.service.Apply(ctx, requester.UserID)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, applicationResponse{
		Message:     "KYC application submitted",
		Application: application,
	})
}

// Status handles http request to read the requester's application state.
func (h *Handler) Status(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	application, err := h.service.Status(ctx, requester.UserID)
	if err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrKYCNotFound {
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, applicationResponse{Application: application})
}

type uploadDocumentRequest struct {
	DocumentType string `form:"document_type" binding:"required"`
}

type uploadDocumentResponse struct {
	Message  string             `json:"message"`
	Document domain.KYCDocument `json:"document"`
}

// UploadDocument handles multipart upload of one KYC document.
func (h *Handler) UploadDocument(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	requester := middleware.Requester(gctx)

	kycID, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req uploadDocumentRequest
	if err := gctx.ShouldBind(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	fileHeader, err := gctx.FormFile("file")
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}
	defer file.Close()

	document, err := h.service.UploadDocument(ctx, requester, kycID,
		domain.DocumentType(req.DocumentType), fileHeader.Filename, file)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidDocumentType:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
		case domain.ErrKYCNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		case domain.ErrNotApplicationOwner:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, uploadDocumentResponse{
		Message:  "Document uploaded",
		Document: document,
	})
}

type pendingResponse struct {
	Applications []domain.KYCApplication `json:"applications"`
}

// Pending handles http request to list applications awaiting review.
func (h *Handler) Pending(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	applications, err := h.service.Pending(ctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, pendingResponse{Applications: applications})
}

type verifyRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// Verify handles http request to record an admin review decision.
func (h *Handler) Verify(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	kycID, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req verifyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	application, err := h.service.Verify(ctx, kycID, domain.KYCStatus(req.Decision))
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidKYCDecision, domain.ErrKYCAlreadyReviewed:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
		case domain.ErrKYCNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, applicationResponse{
		Message:     "KYC " + string(application.Status),
		Application: application,
	})
}
