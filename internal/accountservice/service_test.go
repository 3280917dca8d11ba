package accountservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/corebank/corebank/internal/domain"
)

func testSetup(t *testing.T) (*Service, *MockRepo, *MockKYCChecker, *MockUserGetter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	kyc := NewMockKYCChecker(ctrl)
	users := NewMockUserGetter(ctrl)

	return New(repo, kyc, users), repo, kyc, users
}

func approvedKYC(userID int64) domain.KYCApplication {
	return domain.KYCApplication{ID: 1, UserID: userID, Status: domain.KYCApproved}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	customer := domain.Requester{UserID: 42, Email: "holder@corebank.test", Role: domain.RoleCustomer}
	admin := domain.Requester{UserID: 1, Email: "admin@corebank.test", Role: domain.RoleAdmin}

	year := time.Now().UTC().Year()

	testCases := []struct {
		name       string
		requester  domain.Requester
		arg        CreateParams
		buildStubs func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter)
		wantErr    error
	}{
		{
			name:      "InvalidAccountType",
			requester: customer,
			arg:       CreateParams{AccountType: "checking", InitialDeposit: 10_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
			},
			wantErr: domain.ErrInvalidAccountType,
		},
		{
			name:      "BelowMinimumDeposit",
			requester: customer,
			arg:       CreateParams{AccountType: domain.Current, InitialDeposit: 4_999},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
			},
			wantErr: domain.ErrBelowMinimumDeposit,
		},
		{
			name:      "KYCMissing",
			requester: customer,
			arg:       CreateParams{AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
					Return(domain.KYCApplication{}, domain.ErrKYCNotFound)
			},
			wantErr: domain.ErrKYCNotApproved,
		},
		{
			name:      "KYCPending",
			requester: customer,
			arg:       CreateParams{AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
					Return(domain.KYCApplication{UserID: customer.UserID, Status: domain.KYCPending}, nil)
			},
			wantErr: domain.ErrKYCNotApproved,
		},
		{
			name:      "CustomerCannotOpenForOther",
			requester: customer,
			arg:       CreateParams{TargetEmail: "other@corebank.test", AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				users.EXPECT().GetByEmail(ctx, "other@corebank.test").Times(1).
					Return(domain.User{ID: 77}, nil)
			},
			wantErr: domain.ErrCannotOpenForOther,
		},
		{
			name:      "TargetUserNotFound",
			requester: admin,
			arg:       CreateParams{TargetEmail: "ghost@corebank.test", AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				users.EXPECT().GetByEmail(ctx, "ghost@corebank.test").Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:      "DuplicateType",
			requester: customer,
			arg:       CreateParams{AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
					Return(approvedKYC(customer.UserID), nil)
				repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(12), nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
					Return(domain.Account{}, domain.ErrAccountTypeAlreadyExists)
			},
			wantErr: domain.ErrAccountTypeAlreadyExists,
		},
		{
			name:      "OK",
			requester: customer,
			arg:       CreateParams{AccountType: domain.FixedDeposit, InitialDeposit: 10_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
					Return(approvedKYC(customer.UserID), nil)
				repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(12), nil)
				repo.EXPECT().Create(ctx, domain.CreateAccountParams{
					UserID:         customer.UserID,
					AccountNumber:  fmt.Sprintf("%d%06d", year, 12),
					AccountType:    domain.FixedDeposit,
					InitialDeposit: 10_000,
				}).Times(1).Return(domain.Account{ID: 5, UserID: customer.UserID}, nil)
			},
			wantErr: nil,
		},
		{
			name:      "AdminOpensForTarget",
			requester: admin,
			arg:       CreateParams{TargetEmail: customer.Email, AccountType: domain.Savings, InitialDeposit: 1_000},
			buildStubs: func(repo *MockRepo, kyc *MockKYCChecker, users *MockUserGetter) {
				users.EXPECT().GetByEmail(ctx, customer.Email).Times(1).
					Return(domain.User{ID: customer.UserID, Email: customer.Email}, nil)
				kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
					Return(approvedKYC(customer.UserID), nil)
				repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(13), nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
					Return(domain.Account{ID: 6, UserID: customer.UserID}, nil)
			},
			wantErr: nil,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			service, repo, kyc, users := testSetup(t)
			tc.buildStubs(repo, kyc, users)

			_, err := service.Create(ctx, tc.requester, tc.arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCreateRetriesOnNumberCollision(t *testing.T) {
	ctx := context.Background()
	customer := domain.Requester{UserID: 42, Email: "holder@corebank.test", Role: domain.RoleCustomer}

	service, repo, kyc, _ := testSetup(t)

	kyc.EXPECT().GetByUser(ctx, customer.UserID).Times(1).
		Return(approvedKYC(customer.UserID), nil)

	firstSeq := repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(20), nil)
	firstCreate := repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
		Return(domain.Account{}, domain.ErrDuplicateAccountNumber).After(firstSeq)
	secondSeq := repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(21), nil).After(firstCreate)
	repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
		Return(domain.Account{ID: 9, UserID: customer.UserID}, nil).After(secondSeq)

	account, err := service.Create(ctx, customer, CreateParams{
		AccountType:    domain.Savings,
		InitialDeposit: 1_000,
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), account.ID)
}

func TestOpenApprovalAccount(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("OpensZeroBalanceSavings", func(t *testing.T) {
		service, repo, _, _ := testSetup(t)

		repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(30), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
			DoAndReturn(func(_ context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
				require.Equal(t, userID, arg.UserID)
				require.Equal(t, domain.Savings, arg.AccountType)
				require.Zero(t, arg.InitialDeposit)
				return domain.Account{ID: 1, UserID: userID}, nil
			})

		require.NoError(t, service.OpenApprovalAccount(ctx, userID))
	})

	t.Run("ExistingSavingsIsNoop", func(t *testing.T) {
		service, repo, _, _ := testSetup(t)

		repo.EXPECT().NextSequence(ctx).Times(1).Return(int64(31), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Times(1).
			Return(domain.Account{}, domain.ErrAccountTypeAlreadyExists)

		require.NoError(t, service.OpenApprovalAccount(ctx, userID))
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidStatus", func(t *testing.T) {
		service, _, _, _ := testSetup(t)

		_, err := service.SetStatus(ctx, "2025000001", "suspended")
		require.ErrorIs(t, err, domain.ErrInvalidAccountStatus)
	})

	t.Run("OK", func(t *testing.T) {
		service, repo, _, _ := testSetup(t)

		frozen := domain.Account{ID: 1, AccountNumber: "2025000001", Status: domain.StatusFrozen}
		repo.EXPECT().SetStatus(ctx, frozen.AccountNumber, domain.StatusFrozen).Times(1).
			Return(frozen, nil)

		got, err := service.SetStatus(ctx, frozen.AccountNumber, domain.StatusFrozen)
		require.NoError(t, err)
		require.Equal(t, frozen, got)
	})
}
