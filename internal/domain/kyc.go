package domain

import (
	"errors"
	"time"
)

var (
	// ErrKYCNotFound indicates that no KYC application exists.
	ErrKYCNotFound = errors.New("KYC application not found")
	// ErrInvalidKYCDecision indicates a verification decision outside approved/rejected.
	ErrInvalidKYCDecision = errors.New("invalid decision")
	// ErrInvalidDocumentType indicates an unsupported KYC document type.
	ErrInvalidDocumentType = errors.New("invalid document type")
	// ErrNotApplicationOwner indicates an upload against another user's application.
	ErrNotApplicationOwner = errors.New("not allowed to modify this application")
	// ErrKYCAlreadyReviewed indicates a verification decision on a settled application.
	ErrKYCAlreadyReviewed = errors.New("application already reviewed")
)

// KYCStatus is the review state of an application.
type KYCStatus string

const (
	// KYCPending awaits admin review.
	KYCPending KYCStatus = "pending"
	// KYCApproved gates account opening.
	KYCApproved KYCStatus = "approved"
	// KYCRejected denies account opening.
	KYCRejected KYCStatus = "rejected"
)

// DocumentType is the closed set of accepted KYC documents.
type DocumentType string

const (
	// DocAadhaar is the national id proof.
	DocAadhaar DocumentType = "aadhaar"
	// DocPAN is the tax id proof.
	DocPAN DocumentType = "pan"
	// DocSelfie is the liveness photo.
	DocSelfie DocumentType = "selfie"
)

// ValidDocumentType reports whether t is an accepted document type.
func ValidDocumentType(t DocumentType) bool {
	return t == DocAadhaar || t == DocPAN || t == DocSelfie
}

// KYCApplication holds one user's KYC review state. At most one per user.
type KYCApplication struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Status    KYCStatus `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// KYCDocument records one uploaded document; the file itself lives on disk.
type KYCDocument struct {
	ID           int64        `json:"id"`
	KYCID        int64        `json:"kyc_id"`
	DocumentType DocumentType `json:"document_type"`
	FilePath     string       `json:"file_path"`
	UploadedAt   time.Time    `json:"uploaded_at,omitempty"`
}
