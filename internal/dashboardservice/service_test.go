package dashboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/corebank/corebank/internal/domain"
)

func testSetup(t *testing.T) (*Service, *MockLedger, *MockUserCounter, *MockKYCReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	users := NewMockUserCounter(ctrl)
	kyc := NewMockKYCReader(ctrl)

	return New(ledger, users, kyc), ledger, users, kyc
}

func TestCustomerSummaryFor(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("WithKYCApplication", func(t *testing.T) {
		service, ledger, _, kyc := testSetup(t)

		ledger.EXPECT().AccountAggregatesByUser(ctx, userID).Times(1).
			Return(int64(2), int64(15_000), nil)
		kyc.EXPECT().GetByUser(ctx, userID).Times(1).
			Return(domain.KYCApplication{ID: 1, UserID: userID, Status: domain.KYCApproved}, nil)

		got, err := service.CustomerSummaryFor(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, CustomerSummary{
			AccountCount: 2,
			TotalBalance: 15_000,
			KYCStatus:    domain.KYCApproved,
		}, got)
	})

	t.Run("WithoutKYCApplication", func(t *testing.T) {
		service, ledger, _, kyc := testSetup(t)

		ledger.EXPECT().AccountAggregatesByUser(ctx, userID).Times(1).
			Return(int64(0), int64(0), nil)
		kyc.EXPECT().GetByUser(ctx, userID).Times(1).
			Return(domain.KYCApplication{}, domain.ErrKYCNotFound)

		got, err := service.CustomerSummaryFor(ctx, userID)
		require.NoError(t, err)
		require.Empty(t, got.KYCStatus)
	})

	t.Run("AggregateError", func(t *testing.T) {
		service, ledger, _, _ := testSetup(t)

		ledger.EXPECT().AccountAggregatesByUser(ctx, userID).Times(1).
			Return(int64(0), int64(0), errors.New("db down"))

		_, err := service.CustomerSummaryFor(ctx, userID)
		require.Error(t, err)
	})
}

func TestAdminSummaryAll(t *testing.T) {
	ctx := context.Background()

	service, ledger, users, kyc := testSetup(t)

	users.EXPECT().Count(ctx).Times(1).Return(int64(120), nil)
	ledger.EXPECT().AccountAggregates(ctx).Times(1).
		Return(int64(95), int64(2_300_000), nil)
	kyc.EXPECT().CountByStatus(ctx, domain.KYCPending).Times(1).Return(int64(7), nil)

	got, err := service.AdminSummaryAll(ctx)
	require.NoError(t, err)
	require.Equal(t, AdminSummary{
		TotalUsers:    120,
		TotalAccounts: 95,
		TotalBalance:  2_300_000,
		PendingKYC:    7,
	}, got)
}

func TestRecentFeeds(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	transactions := []domain.Transaction{
		{ID: 9, ReferenceID: "TXN555123987", Amount: 250, Status: domain.StatusSuccess},
	}

	t.Run("RecentMine", func(t *testing.T) {
		service, ledger, _, _ := testSetup(t)

		ledger.EXPECT().ListByUser(ctx, userID, int32(recentLimit)).Times(1).
			Return(transactions, nil)

		got, err := service.RecentMine(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, transactions, got)
	})

	t.Run("RecentAll", func(t *testing.T) {
		service, ledger, _, _ := testSetup(t)

		ledger.EXPECT().ListAll(ctx, int32(recentLimit)).Times(1).
			Return(transactions, nil)

		got, err := service.RecentAll(ctx)
		require.NoError(t, err)
		require.Equal(t, transactions, got)
	})
}
