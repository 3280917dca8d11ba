package middleware

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/tokenpkg"
)

// AddAuthorization attaches a freshly minted bearer token to the request.
// Test helper shared by delivery layer tests.
func AddAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authorizationType string,
	userID int64,
	email string,
	role domain.Role,
	duration time.Duration,
) {
	token, _, err := tokenMaker.CreateToken(userID, email, role, duration)
	require.NoError(t, err)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, token)
	request.Header.Set(AuthorizationHeaderKey, authorizationHeader)
}
