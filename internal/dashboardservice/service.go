// Package dashboardservice aggregates read models for the dashboards.
package dashboardservice

import (
	"context"

	"github.com/corebank/corebank/internal/domain"
)

// recentLimit caps the recent transaction feeds on both dashboards.
const recentLimit = 5

// Ledger provides the read side of the transaction log and account
// aggregates.
//
//go:generate mockgen -source service.go -destination service_mock.go -package dashboardservice
type Ledger interface {
	ListByUser(ctx context.Context, userID int64, limit int32) ([]domain.Transaction, error)
	ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error)
	AccountAggregatesByUser(ctx context.Context, userID int64) (count int64, totalBalance int64, err error)
	AccountAggregates(ctx context.Context) (count int64, totalBalance int64, err error)
}

// UserCounter reports the registered user population.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// KYCReader provides the KYC review state needed by the dashboards.
type KYCReader interface {
	GetByUser(ctx context.Context, userID int64) (domain.KYCApplication, error)
	CountByStatus(ctx context.Context, status domain.KYCStatus) (int64, error)
}

// Service facilitates dashboard service layer logic.
type Service struct {
	ledger Ledger
	users  UserCounter
	kyc    KYCReader
}

// New returns dashboard service.
func New(ledger Ledger, users UserCounter, kyc KYCReader) *Service {
	return &Service{
		ledger: ledger,
		users:  users,
		kyc:    kyc,
	}
}

// CustomerSummary is the customer dashboard read model.
type CustomerSummary struct {
	AccountCount int64            `json:"account_count"`
	TotalBalance int64            `json:"total_balance"`
	KYCStatus    domain.KYCStatus `json:"kyc_status"`
}

// AdminSummary is the back-office dashboard read model.
type AdminSummary struct {
	TotalUsers    int64 `json:"total_users"`
	TotalAccounts int64 `json:"total_accounts"`
	TotalBalance  int64 `json:"total_balance"`
	PendingKYC    int64 `json:"pending_kyc"`
}

// CustomerSummaryFor builds the customer dashboard for one user. A user
// without a KYC application gets an empty KYC status rather than an error.
func (s *Service) CustomerSummaryFor(ctx context.Context, userID int64) (CustomerSummary, error) {
	count, totalBalance, err := s.ledger.AccountAggregatesByUser(ctx, userID)
	if err != nil {
		return CustomerSummary{}, err
	}

	summary := CustomerSummary{
		AccountCount: count,
		TotalBalance: totalBalance,
	}

	application, err := s.kyc.GetByUser(ctx, userID)
	switch err {
	case nil:
		summary.KYCStatus = application.Status
	case domain.ErrKYCNotFound:
	default:
		return CustomerSummary{}, err
	}

	return summary, nil
}

// AdminSummaryAll builds the back-office dashboard.
func (s *Service) AdminSummaryAll(ctx context.Context) (AdminSummary, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return AdminSummary{}, err
	}

	totalAccounts, totalBalance, err := s.ledger.AccountAggregates(ctx)
	if err != nil {
		return AdminSummary{}, err
	}

	pendingKYC, err := s.kyc.CountByStatus(ctx, domain.KYCPending)
	if err != nil {
		return AdminSummary{}, err
	}

	return AdminSummary{
		TotalUsers:    totalUsers,
		TotalAccounts: totalAccounts,
		TotalBalance:  totalBalance,
		PendingKYC:    pendingKYC,
	}, nil
}

// RecentMine returns the user's most recent transactions.
func (s *Service) RecentMine(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.ledger.ListByUser(ctx, userID, recentLimit)
}

// RecentAll returns the most recent transactions across all accounts.
func (s *Service) RecentAll(ctx context.Context) ([]domain.Transaction, error) {
	return s.ledger.ListAll(ctx, recentLimit)
}
