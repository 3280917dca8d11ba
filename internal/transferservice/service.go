// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/limitpolicy"
	"github.com/corebank/corebank/pkg/refpkg"
)

// Repo provides the ledger access interface needed by the transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	GetAccount(ctx context.Context, accountNumber string) (domain.Account, error)
	SumSuccessfulDebits(ctx context.Context, accountNumber string, from, to time.Time) (int64, error)
	CommitTransfer(ctx context.Context, arg domain.CommitTransferParams) (domain.Transaction, error)
}

// Service orchestrates validation, limit checks and the atomic commit
// of one transfer.
type Service struct {
	ledger Repo
}

// New returns transfer service struct to manage transfer business logic.
func New(lr Repo) *Service {
	return &Service{
		ledger: lr,
	}
}

// validate runs the pre-commit checks in their fixed order and returns
// the first violation. It reads uncommitted state; the ledger repeats
// the limit evaluation under row locks at commit time.
func (s *Service) validate(ctx context.Context, requester domain.Requester, arg domain.CreateTransferParams) error {
	l := zerolog.Ctx(ctx)

	if arg.SenderAccount == arg.ReceiverAccount {
		return domain.ErrSameAccount
	}

	sender, err := s.ledger.GetAccount(ctx, arg.SenderAccount)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return domain.ErrSenderNotFound
		}

		return err
	}

	receiver, err := s.ledger.GetAccount(ctx, arg.ReceiverAccount)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return domain.ErrReceiverNotFound
		}

		return err
	}

	if sender.Status != domain.StatusActive {
		return domain.ErrSenderInactive
	}

	if receiver.Status != domain.StatusActive {
		return domain.ErrReceiverInactive
	}

	if !requester.CanOperate(sender.UserID) {
		l.Info().
			Int64("requester_id", requester.UserID).
			Str("sender_account", arg.SenderAccount).
			Msg("transfer rejected: requester does not own sender account")

		return domain.ErrNotAccountOwner
	}

	from, to := limitpolicy.DayWindowUTC(time.Now())

	debitedToday, err := s.ledger.SumSuccessfulDebits(ctx, arg.SenderAccount, from, to)
	if err != nil {
		return err
	}

	return limitpolicy.Evaluate(limitpolicy.Inputs{
		Amount:        arg.Amount,
		SenderBalance: sender.Balance,
		DebitedToday:  debitedToday,
	})
}

// Transfer checks if the transfer request is valid and then commits it.
//
// A rejection leaves no trace: only committed transfers append a ledger
// entry. On a reference id collision the commit is retried once with a
// fresh reference before the error is surfaced.
func (s *Service) Transfer(ctx context.Context, requester domain.Requester, arg domain.CreateTransferParams) (domain.TransferReceipt, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validate(ctx, requester, arg); err != nil {
		return domain.TransferReceipt{}, err
	}

	commitArg := domain.CommitTransferParams{
		SenderAccount:   arg.SenderAccount,
		ReceiverAccount: arg.ReceiverAccount,
		Amount:          arg.Amount,
		ReferenceID:     refpkg.TransferReference(),
	}

	txn, err := s.ledger.CommitTransfer(ctx, commitArg)
	if err == domain.ErrDuplicateReference {
		l.Warn().Str("reference_id", commitArg.ReferenceID).Msg("reference collision, retrying once")

		commitArg.ReferenceID = refpkg.TransferReference()
		txn, err = s.ledger.CommitTransfer(ctx, commitArg)
	}

	if err != nil {
		return domain.TransferReceipt{}, err
	}

	return domain.TransferReceipt{
		ReferenceID: txn.ReferenceID,
		DebitedFrom: txn.SenderAccount,
		CreditedTo:  txn.ReceiverAccount,
		Amount:      txn.Amount,
	}, nil
}
