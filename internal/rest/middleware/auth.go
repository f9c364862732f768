package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/netserve/catalog/internal/config"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
	"github.com/netserve/catalog/internal/types"
)

// tokenClaims are the claims carried by tokens from the access-control
// system. Capabilities arrive precomputed; this service never derives them.
type tokenClaims struct {
	jwt.RegisteredClaims
	Capabilities []string `json:"capabilities"`
}

// AuthenticateMiddleware parses the bearer token and attaches the acting user
// and capability set to the request context. Requests without a token pass
// through unauthenticated; capability checks in the service layer reject any
// gated action they attempt.
func AuthenticateMiddleware(cfg *config.Configuration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			abortWithAuthError(c, ierr.NewError("malformed authorization header").
				WithHint("Use a Bearer token").
				Mark(ierr.ErrPermissionDenied))
			return
		}

		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ierr.NewErrorf("unexpected signing method %v", t.Header["alg"]).
					Mark(ierr.ErrPermissionDenied)
			}
			return []byte(cfg.Auth.Secret), nil
		})
		if err != nil || !token.Valid {
			log.Warnw("rejected invalid token", "error", err)
			abortWithAuthError(c, ierr.WithError(err).
				WithHint("Invalid or expired token").
				Mark(ierr.ErrPermissionDenied))
			return
		}

		ctx := types.WithUserID(c.Request.Context(), claims.Subject)
		ctx = types.WithCapabilities(ctx, types.NewCapabilitySet(claims.Capabilities...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithAuthError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
