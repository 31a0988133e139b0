package v1handler

import (
	"context"
	"net/http"
	"strings"

	"shopapi/internal/accounts"
	"shopapi/pkg/cache"
	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
	"shopapi/pkg/serrors"
)

type ctxKey int

const claimsKey ctxKey = iota

// SecHandler authenticates requests with bearer access tokens and enforces
// role requirements.
type SecHandler struct {
	issuer    *accounts.TokenIssuer
	blacklist cache.TokenBlacklist
}

// NewSecHandler constructs a SecHandler from the token issuer and the
// blacklist store.
func NewSecHandler(issuer *accounts.TokenIssuer, blacklist cache.TokenBlacklist) *SecHandler {
	return &SecHandler{issuer: issuer, blacklist: blacklist}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return header[len("Bearer "):]
	}

	return ""
}

// Authenticate verifies the access token, rejects blacklisted sessions and
// stores the claims on the request context.
func (s *SecHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httputil.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims, err := s.issuer.Verify(token, accounts.TokenTypeAccess)
		if err != nil {
			httputil.WriteError(w, r, err)

			return
		}

		revoked, err := s.blacklist.Contains(r.Context(), claims.ID)
		if err != nil {
			httputil.WriteError(w, r, err)

			return
		}
		if revoked {
			httputil.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "token revoked"))

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// Require allows only the listed roles through. It must run after
// Authenticate.
func (s *SecHandler) Require(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFrom(r.Context())
			if claims == nil {
				httputil.WriteError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			for _, role := range roles {
				if domain.UserRole(claims.Role) == role {
					next.ServeHTTP(w, r)

					return
				}
			}

			httputil.WriteError(w, r, serrors.With(serrors.ErrForbidden, "insufficient role"))
		})
	}
}

func claimsFrom(ctx context.Context) *accounts.Claims {
	claims, _ := ctx.Value(claimsKey).(*accounts.Claims)

	return claims
}

// currentUserID returns the authenticated user's ID from the request context.
func currentUserID(r *http.Request) (domain.UserID, error) {
	claims := claimsFrom(r.Context())
	if claims == nil {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	return claims.UserID()
}
