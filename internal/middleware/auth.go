package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/pkg/jsonresponse"
	"github.com/corebank/corebank/pkg/tokenpkg"
)

const (
	// AuthorizationHeaderKey is the header carrying the bearer token.
	AuthorizationHeaderKey = "authorization"
	// AuthorizationTypeBearer is the only supported authorization scheme.
	AuthorizationTypeBearer = "bearer"
	// AuthorizationPayloadKey is the gin context key for the verified token payload.
	AuthorizationPayloadKey = "authorization_payload"
)

// ErrAdminOnly indicates that the route requires the admin role.
var ErrAdminOnly = errors.New("admin access only")

// AuthMiddleware verifies the bearer token and stores its payload in the context.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(AuthorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(err))

			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(err))

			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(err))

			return
		}

		accessToken := fields[1]

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, jsonresponse.Error(err))

			return
		}

		ctx.Set(AuthorizationPayloadKey, payload)
		ctx.Next()
	}
}

// AdminMiddleware aborts requests whose verified payload lacks the admin role.
// It must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := ctx.MustGet(AuthorizationPayloadKey).(*tokenpkg.Payload)

		if payload.Role != domain.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, jsonresponse.Error(ErrAdminOnly))

			return
		}

		ctx.Next()
	}
}

// Requester extracts the verified requester identity from the gin context.
func Requester(ctx *gin.Context) domain.Requester {
	payload := ctx.MustGet(AuthorizationPayloadKey).(*tokenpkg.Payload)
	return payload.Requester()
}
