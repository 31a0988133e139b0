// Package accounts implements registration, credential login and JWT session
// management backed by the user storage and a Redis token blacklist.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopapi/pkg/cache"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

const minPasswordLength = 8

type accounts struct {
	storage   storage.Storage
	issuer    *TokenIssuer
	blacklist cache.TokenBlacklist
}

func (a accounts) Register(ctx context.Context, req RegisterReq) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email")
	}
	if len(req.Password) < minPasswordLength {
		return nil, serrors.With(serrors.ErrBadRequest,
			"password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.StoreUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		PhoneNumber:  req.PhoneNumber,
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "email already registered")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func (a accounts) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := a.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch user: %w", err)
	}
	// same error for unknown email and wrong password so the endpoint does
	// not leak which emails exist
	if user == nil {
		return nil, nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}
	if !user.IsActive() {
		return nil, nil, serrors.With(serrors.ErrForbidden, "account is not active")
	}

	pair, err := a.issuer.Issue(user)
	if err != nil {
		return nil, nil, fmt.Errorf("could not issue tokens: %w", err)
	}

	return user, pair, nil
}

func (a accounts) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.issuer.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := a.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check token blacklist: %w", err)
	}
	if revoked {
		return nil, serrors.With(serrors.ErrUnauthorized, "token revoked")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil || !user.IsActive() {
		return nil, serrors.With(serrors.ErrUnauthorized, "account is not active")
	}

	// rotate: the used refresh token is dead from here on
	if err := a.revoke(ctx, claims); err != nil {
		return nil, err
	}

	pair, err := a.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("could not issue tokens: %w", err)
	}

	return pair, nil
}

func (a accounts) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := a.issuer.Verify(accessToken, TokenTypeAccess)
	if err != nil {
		return err
	}
	if err := a.revoke(ctx, claims); err != nil {
		return err
	}

	// the refresh token is optional; revoke it too when the client sends it
	if refreshToken != "" {
		refreshClaims, err := a.issuer.Verify(refreshToken, TokenTypeRefresh)
		if err != nil {
			return err
		}
		if err := a.revoke(ctx, refreshClaims); err != nil {
			return err
		}
	}

	return nil
}

// revoke blacklists the token until it would have expired anyway.
func (a accounts) revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := a.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("could not blacklist token: %w", err)
	}

	return nil
}

func (a accounts) Me(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// New creates an Accounts service backed by the provided storage, token
// issuer and blacklist.
func New(storage storage.Storage, issuer *TokenIssuer, blacklist cache.TokenBlacklist) Accounts {
	return &accounts{
		storage:   storage,
		issuer:    issuer,
		blacklist: blacklist,
	}
}
