package accounts

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
)

// Token types carried in the typ claim so access tokens cannot be replayed as
// refresh tokens and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims issued by this service.
type Claims struct {
	jwt.RegisteredClaims

	Role      string `json:"role"`
	TokenType string `json:"typ"`
}

// TokenIssuer signs and verifies RS256 token pairs.
type TokenIssuer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey

	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer parses the PEM-encoded RSA key pair. The private key may be
// empty for verify-only use.
func NewTokenIssuer(privatePEM, publicPEM string, accessTTL, refreshTTL time.Duration) (*TokenIssuer, error) {
	issuer := &TokenIssuer{
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}

	if privatePEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privatePEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		issuer.privateKey = key
		issuer.publicKey = &key.PublicKey
	}
	if publicPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicPEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		issuer.publicKey = key
	}
	if issuer.publicKey == nil {
		return nil, fmt.Errorf("no RSA key configured")
	}

	return issuer, nil
}

// Issue creates a new access/refresh pair for the user. Each token carries its
// own jti so either can be blacklisted independently.
func (i *TokenIssuer) Issue(user *domain.User) (*TokenPair, error) {
	if i.privateKey == nil {
		return nil, fmt.Errorf("token issuer has no private key")
	}

	now := time.Now()
	accessExpiry := now.Add(i.accessTTL)

	access, err := i.sign(user, TokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, err
	}
	refresh, err := i.sign(user, TokenTypeRefresh, now, now.Add(i.refreshTTL))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

func (i *TokenIssuer) sign(user *domain.User, tokenType string, now, expiresAt time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.UUID(user.ID).String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role:      string(user.Role),
		TokenType: tokenType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and checks its typ claim.
func (i *TokenIssuer) Verify(token, wantType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}

		return i.publicKey, nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token")
	}
	if claims.TokenType != wantType {
		return nil, serrors.With(serrors.ErrUnauthorized, "unexpected token type")
	}

	return claims, nil
}

// UserID extracts the subject of the claims as a typed user ID.
func (c *Claims) UserID() (domain.UserID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid subject")
	}

	return domain.UserID(id), nil
}
