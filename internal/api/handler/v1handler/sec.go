package v1handler

import (
	"crypto/rsa"
	"strings"

	"auditor/internal/config"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key under which the authenticated user ID is
// stored by the bearer middleware.
const UserIDKey = "UserID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified against.
	PublicKey string
}

// NewSecHandlerOptions builds SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens. The token subject carries the
// user ID; there is no local user record.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse JWT public key")
	}

	return &SecHandler{publicKey: key}, nil
}

// VerifyToken validates the raw token and returns the user ID from its
// subject claim.
func (s *SecHandler) VerifyToken(token string) (domain.UserID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid token")
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(sub), nil
}

// Middleware returns the gin middleware enforcing bearer authentication. On
// success the user ID is stored under UserIDKey.
func (s *SecHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(c, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		userID, err := s.VerifyToken(token)
		if err != nil {
			writeError(c, err)

			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by the middleware.
func UserID(c *gin.Context) domain.UserID {
	id, _ := c.Value(UserIDKey).(domain.UserID)

	return id
}
