package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-ledger-indexer/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
)

const PRINCIPAL_KEY = "principal"

const (
	AuthMethodJWT    = "jwt"
	AuthMethodAPIKey = "apikey"
)

var (
	ErrMissingCredentials = errors.New("missing Authorization header")
	ErrMalformedHeader    = errors.New("invalid Authorization header format")
	ErrJWTNotConfigured   = errors.New("JWT public key not configured")
	ErrAPIKeysMissing     = errors.New("no API keys configured")
	ErrInvalidAPIKey      = errors.New("invalid API key")
)

// AuthConfig holds authentication configuration for the admin routes
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Principal is the authenticated caller of an admin route
type Principal struct {
	Method  string
	Subject string
}

// Authenticator checks admin credentials. The public key is parsed once at construction.
type Authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   [][]byte
	parser    *jwt.Parser
}

// NewAuthenticator prepares an authenticator from the configuration.
// A malformed public key does not fail construction; bearer tokens are rejected instead.
func NewAuthenticator(cfg AuthConfig) *Authenticator {
	a := &Authenticator{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{
			jwt.SigningMethodRS256.Alg(),
			jwt.SigningMethodRS384.Alg(),
			jwt.SigningMethodRS512.Alg(),
		})),
	}

	if cfg.JWTPublicKey == "" {
		a.keyErr = ErrJWTNotConfigured
	} else {
		a.publicKey, a.keyErr = jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}

	return a
}

// Authenticate resolves the Authorization header to a principal.
// Supported schemes are "Bearer <jwt>" and "ApiKey <key>", case insensitive.
func (a *Authenticator) Authenticate(header string) (*Principal, error) {
	if header == "" {
		return nil, ErrMissingCredentials
	}

	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok {
		return nil, ErrMalformedHeader
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		subject, err := a.verifyToken(credentials)
		if err != nil {
			return nil, err
		}
		return &Principal{Method: AuthMethodJWT, Subject: subject}, nil
	case "apikey":
		if err := a.verifyAPIKey(credentials); err != nil {
			return nil, err
		}
		return &Principal{Method: AuthMethodAPIKey}, nil
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// verifyToken returns the subject of a valid RSA-signed token.
// Expiry and not-before are enforced by the parser.
func (a *Authenticator) verifyToken(token string) (string, error) {
	if a.keyErr != nil {
		return "", a.keyErr
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	}); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	return claims.Subject, nil
}

func (a *Authenticator) verifyAPIKey(key string) error {
	if len(a.apiKeys) == 0 {
		return ErrAPIKeysMissing
	}

	candidate := []byte(key)
	for _, valid := range a.apiKeys {
		if subtle.ConstantTimeCompare(candidate, valid) == 1 {
			return nil
		}
	}
	return ErrInvalidAPIKey
}

// Auth guards the admin routes. The principal is stored on the gin context and its
// method and subject are attached to the request logger.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	authenticator := NewAuthenticator(cfg)

	return func(c *gin.Context) {
		principal, err := authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr})
			return
		}

		c.Set(PRINCIPAL_KEY, principal)

		fields := []zap.Field{zap.String("auth_method", principal.Method)}
		if principal.Subject != "" {
			fields = append(fields, zap.String("operator", principal.Subject))
		}
		c.Request = c.Request.WithContext(logger.ContextWithFields(c.Request.Context(), fields...))

		c.Next()
	}
}

// PrincipalFromContext returns the principal set by Auth
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(PRINCIPAL_KEY)
	if !ok {
		return nil, false
	}
	principal, ok := v.(*Principal)
	return principal, ok
}
