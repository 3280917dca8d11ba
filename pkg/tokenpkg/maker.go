package tokenpkg

import (
	"time"

	"github.com/corebank/corebank/internal/domain"
)

// Maker is an interface for managing access tokens.
type Maker interface {
	// CreateToken creates a new token for the given user identity and duration.
	CreateToken(userID int64, email string, role domain.Role, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}
