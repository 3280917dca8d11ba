// Package kycrepo manages repository layer of KYC applications and documents.
package kycrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/dbpkg"
	"github.com/corebank/corebank/pkg/errorspkg"
)

// RepoPGS facilitates KYC repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns KYC RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    kyc_applications (user_id, status)
VALUES
    ($1, 'pending')
RETURNING id, user_id, status, created_at
`

// Create creates a pending application for the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, userID int64) (domain.KYCApplication, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID)

	var k domain.KYCApplication

	err := row.Scan(&k.ID, &k.UserID, &k.Status, &k.CreatedAt)
	if err != nil {
		l.Error().Err(err).Send()
		return k, errorspkg.ErrInternal
	}

	return k, nil
}

const getQuery = `
SELECT
	id, user_id, status, created_at
FROM kyc_applications
WHERE id = $1
`

// Get returns the application with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.KYCApplication, error) {
	return r.getOne(ctx, getQuery, id)
}

const getByUserQuery = `
SELECT
	id, user_id, status, created_at
FROM kyc_applications
WHERE user_id = $1
`

// GetByUser returns the user's application.
func (r *RepoPGS) GetByUser(ctx context.Context, userID int64) (domain.KYCApplication, error) {
	return r.getOne(ctx, getByUserQuery, userID)
}

func (r *RepoPGS) getOne(ctx context.Context, query string, arg interface{}) (domain.KYCApplication, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	var k domain.KYCApplication

	err := row.Scan(&k.ID, &k.UserID, &k.Status, &k.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return k, domain.ErrKYCNotFound
		}

		l.Error().Err(err).Send()

		return k, errorspkg.ErrInternal
	}

	return k, nil
}

const listByStatusQuery = `
SELECT
	id, user_id, status, created_at
FROM kyc_applications
WHERE status = $1
ORDER BY id
`

// ListByStatus returns all applications in the given review state.
func (r *RepoPGS) ListByStatus(ctx context.Context, status domain.KYCStatus) ([]domain.KYCApplication, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByStatusQuery, status)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.KYCApplication{}

	for rows.Next() {
		var k domain.KYCApplication
		if err := rows.Scan(&k.ID, &k.UserID, &k.Status, &k.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, k)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setStatusQuery = `
UPDATE kyc_applications
SET status = $1
WHERE id = $2
RETURNING id, user_id, status, created_at
`

// SetStatus records the review decision and returns the updated application.
func (r *RepoPGS) SetStatus(ctx context.Context, id int64, status domain.KYCStatus) (domain.KYCApplication, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setStatusQuery, status, id)

	var k domain.KYCApplication

	err := row.Scan(&k.ID, &k.UserID, &k.Status, &k.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return k, domain.ErrKYCNotFound
		}

		l.Error().Err(err).Send()

		return k, errorspkg.ErrInternal
	}

	return k, nil
}

const addDocumentQuery = `
INSERT INTO
    kyc_documents (kyc_id, document_type, file_path)
VALUES
    ($1, $2, $3)
RETURNING id, kyc_id, document_type, file_path, uploaded_at
`

// AddDocument records an uploaded document for the application.
func (r *RepoPGS) AddDocument(ctx context.Context, kycID int64, documentType domain.DocumentType, filePath string) (domain.KYCDocument, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addDocumentQuery, kycID, documentType, filePath)

	var d domain.KYCDocument

	err := row.Scan(&d.ID, &d.KYCID, &d.DocumentType, &d.FilePath, &d.UploadedAt)
	if err != nil {
		l.Error().Err(err).Send()
		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const countByStatusQuery = `
SELECT COUNT(id)
FROM kyc_applications
WHERE status = $1
`

// CountByStatus returns the number of applications in the given state.
func (r *RepoPGS) CountByStatus(ctx context.Context, status domain.KYCStatus) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64

	if err := r.db.QueryRowContext(ctx, countByStatusQuery, status).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
