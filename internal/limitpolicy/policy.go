// Package limitpolicy evaluates whether a proposed transfer amount is
// permitted. It performs no I/O: callers fetch the sender state and the
// day's aggregate, the policy only judges them.
package limitpolicy

import (
	"time"

	"github.com/corebank/corebank/internal/domain"
)

// Policy constants, in minor units of the currency.
const (
	// MinTransfer is the smallest amount a single transfer may move.
	MinTransfer int64 = 1
	// MaxPerTransfer caps a single transfer.
	MaxPerTransfer int64 = 50_000
	// DailyLimit caps the sum of one sender's successful debits per UTC day.
	DailyLimit int64 = 200_000
)

// Inputs are the pre-fetched facts a verdict is based on.
type Inputs struct {
	Amount        int64
	SenderBalance int64
	DebitedToday  int64
}

// Evaluate returns the first violated rule, checked in fixed order:
// minimum, per-transfer cap, daily cap, balance. A nil result means the
// transfer is permitted.
func Evaluate(in Inputs) error {
	if in.Amount < MinTransfer {
		return domain.ErrBelowMinimum
	}

	if in.Amount > MaxPerTransfer {
		return domain.ErrExceedsPerTransferCap
	}

	if in.DebitedToday+in.Amount > DailyLimit {
		return domain.ErrExceedsDailyLimit
	}

	if in.SenderBalance < in.Amount {
		return domain.ErrInsufficientFunds
	}

	return nil
}

// DayWindowUTC returns the UTC calendar-day window [midnight, next
// midnight) containing now. The daily cap deliberately uses calendar
// days rather than a rolling 24h window so the aggregate stays a plain
// range scan.
func DayWindowUTC(now time.Time) (start, end time.Time) {
	utc := now.UTC()
	start = time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, 1)

	return start, end
}
