// Package kycservice manages business logic layer of KYC review.
package kycservice

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/errorspkg"
)

// Repo provides data access layer interface needed by KYC service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package kycservice
type Repo interface {
	Create(ctx context.Context, userID int64) (domain.KYCApplication, error)
	Get(ctx context.Context, id int64) (domain.KYCApplication, error)
	GetByUser(ctx context.Context, userID int64) (domain.KYCApplication, error)
	ListByStatus(ctx context.Context, status domain.KYCStatus) ([]domain.KYCApplication, error)
	SetStatus(ctx context.Context, id int64, status domain.KYCStatus) (domain.KYCApplication, error)
	AddDocument(ctx context.Context, kycID int64, documentType domain.DocumentType, filePath string) (domain.KYCDocument, error)
}

// AccountOpener opens the account granted on approval.
type AccountOpener interface {
	OpenApprovalAccount(ctx context.Context, userID int64) error
}

// Service facilitates KYC service layer logic.
type Service struct {
	repo       Repo
	accounts   AccountOpener
	storageDir string
}

// New returns KYC service.
func New(r Repo, accounts AccountOpener, storageDir string) *Service {
	return &Service{
		repo:       r,
		accounts:   accounts,
		storageDir: storageDir,
	}
}

// Apply opens a pending application for the user. Applying twice is a
// no-op that returns the existing application whatever its state.
func (s *Service) Apply(ctx context.Context, userID int64) (domain.KYCApplication, error) {
	application, err := s.repo.GetByUser(ctx, userID)
	switch err {
	case nil:
		return application, nil
	case domain.ErrKYCNotFound:
		return s.repo.Create(ctx, userID)
	default:
		return domain.KYCApplication{}, err
	}
}

// Status returns the user's application.
func (s *Service) Status(ctx context.Context, userID int64) (domain.KYCApplication, error) {
	return s.repo.GetByUser(ctx, userID)
}

// UploadDocument stores the document file on disk and records it against
// the application. Only the applicant may upload.
func (s *Service) UploadDocument(ctx context.Context, requester domain.Requester, kycID int64, documentType domain.DocumentType, fileName string, file io.Reader) (domain.KYCDocument, error) {
	l := zerolog.Ctx(ctx)

	if !domain.ValidDocumentType(documentType) {
		return domain.KYCDocument{}, domain.ErrInvalidDocumentType
	}

	application, err := s.repo.Get(ctx, kycID)
	if err != nil {
		return domain.KYCDocument{}, err
	}

	if application.UserID != requester.UserID {
		return domain.KYCDocument{}, domain.ErrNotApplicationOwner
	}

	path, err := s.saveFile(kycID, documentType, fileName, file)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.KYCDocument{}, errorspkg.ErrInternal
	}

	return s.repo.AddDocument(ctx, kycID, documentType, path)
}

func (s *Service) saveFile(kycID int64, documentType domain.DocumentType, fileName string, file io.Reader) (string, error) {
	dir := filepath.Join(s.storageDir, fmt.Sprintf("%d", kycID))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	// The stored name is derived from the document type; the client
	// supplied name contributes only its extension.
	path := filepath.Join(dir, string(documentType)+filepath.Ext(fileName))

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		return "", err
	}

	return path, dst.Close()
}

// Pending returns all applications awaiting review.
func (s *Service) Pending(ctx context.Context) ([]domain.KYCApplication, error) {
	return s.repo.ListByStatus(ctx, domain.KYCPending)
}

// Verify records the review decision. Approval opens the user's first
// savings account so the customer can receive transfers right away.
func (s *Service) Verify(ctx context.Context, kycID int64, decision domain.KYCStatus) (domain.KYCApplication, error) {
	l := zerolog.Ctx(ctx)

	if decision != domain.KYCApproved && decision != domain.KYCRejected {
		return domain.KYCApplication{}, domain.ErrInvalidKYCDecision
	}

	application, err := s.repo.Get(ctx, kycID)
	if err != nil {
		return domain.KYCApplication{}, err
	}

	if application.Status != domain.KYCPending {
		return domain.KYCApplication{}, domain.ErrKYCAlreadyReviewed
	}

	application, err = s.repo.SetStatus(ctx, kycID, decision)
	if err != nil {
		return domain.KYCApplication{}, err
	}

	if decision == domain.KYCApproved {
		if err := s.accounts.OpenApprovalAccount(ctx, application.UserID); err != nil {
			// The decision is already recorded; the customer can still
			// open an account explicitly.
			l.Error().Err(err).Int64("user_id", application.UserID).
				Msg("failed to open account on approval")
		}
	}

	return application, nil
}
