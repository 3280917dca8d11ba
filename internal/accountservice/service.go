// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/refpkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, accountNumber string) (domain.Account, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Account, error)
	SetStatus(ctx context.Context, accountNumber string, status domain.AccountStatus) (domain.Account, error)
	NextSequence(ctx context.Context) (int64, error)
}

// KYCChecker reports the KYC state gating account opening.
type KYCChecker interface {
	GetByUser(ctx context.Context, userID int64) (domain.KYCApplication, error)
}

// UserGetter resolves account holders by email.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo  Repo
	kyc   KYCChecker
	users UserGetter
}

// New returns account service.
func New(r Repo, kyc KYCChecker, users UserGetter) *Service {
	return &Service{
		repo:  r,
		kyc:   kyc,
		users: users,
	}
}

// CreateParams is the input to open an account on a customer's request.
// TargetEmail lets an admin open the account for another user; customers
// must leave it empty or set it to their own address.
type CreateParams struct {
	TargetEmail    string
	AccountType    domain.AccountType
	InitialDeposit int64
}

// Create opens an account for the requester, or for TargetEmail when the
// requester may act for that user. The holder needs an approved KYC
// application and the initial deposit must meet the product minimum.
func (s *Service) Create(ctx context.Context, requester domain.Requester, arg CreateParams) (domain.Account, error) {
	holderID := requester.UserID

	if arg.TargetEmail != "" && arg.TargetEmail != requester.Email {
		holder, err := s.users.GetByEmail(ctx, arg.TargetEmail)
		if err != nil {
			return domain.Account{}, err
		}

		if !requester.CanOperate(holder.ID) {
			return domain.Account{}, domain.ErrCannotOpenForOther
		}

		holderID = holder.ID
	}

	minDeposit, ok := domain.MinimumDeposit(arg.AccountType)
	if !ok {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	if arg.InitialDeposit < minDeposit {
		return domain.Account{}, domain.ErrBelowMinimumDeposit
	}

	if err := s.checkKYC(ctx, holderID); err != nil {
		return domain.Account{}, err
	}

	return s.open(ctx, holderID, arg.AccountType, arg.InitialDeposit)
}

// OpenApprovalAccount opens the zero balance savings account granted on
// KYC approval. Nothing happens if the user already holds one.
func (s *Service) OpenApprovalAccount(ctx context.Context, userID int64) error {
	_, err := s.open(ctx, userID, domain.Savings, 0)
	if err == domain.ErrAccountTypeAlreadyExists {
		return nil
	}

	return err
}

func (s *Service) checkKYC(ctx context.Context, userID int64) error {
	application, err := s.kyc.GetByUser(ctx, userID)
	if err != nil {
		if err == domain.ErrKYCNotFound {
			return domain.ErrKYCNotApproved
		}

		return err
	}

	if application.Status != domain.KYCApproved {
		return domain.ErrKYCNotApproved
	}

	return nil
}

func (s *Service) open(ctx context.Context, userID int64, accountType domain.AccountType, deposit int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.create(ctx, userID, accountType, deposit)
	if err == domain.ErrDuplicateAccountNumber {
		// The sequence makes collisions near impossible; one retry with
		// a fresh number covers a manually inserted duplicate.
		l.Warn().Msg("account number collision, retrying with fresh sequence")
		account, err = s.create(ctx, userID, accountType, deposit)
	}

	return account, err
}

func (s *Service) create(ctx context.Context, userID int64, accountType domain.AccountType, deposit int64) (domain.Account, error) {
	seq, err := s.repo.NextSequence(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	return s.repo.Create(ctx, domain.CreateAccountParams{
		UserID:         userID,
		AccountNumber:  refpkg.AccountNumber(time.Now().UTC().Year(), seq),
		AccountType:    accountType,
		InitialDeposit: deposit,
	})
}

// ListMine returns the requester's accounts.
func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus freezes, reactivates or closes the account.
func (s *Service) SetStatus(ctx context.Context, accountNumber string, status domain.AccountStatus) (domain.Account, error) {
	if !domain.ValidAccountStatus(status) {
		return domain.Account{}, domain.ErrInvalidAccountStatus
	}

	return s.repo.SetStatus(ctx, accountNumber, status)
}
