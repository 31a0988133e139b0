package accounts

import (
	"context"
	"time"

	"shopapi/pkg/domain"
)

// TokenPair is an access/refresh token set issued on login and refresh.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// RegisterReq carries the fields of a registration request.
type RegisterReq struct {
	Email       string
	Password    string
	Nickname    string
	PhoneNumber string
}

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	// Register creates a new active user account with the user role.
	Register(ctx context.Context, req RegisterReq) (*domain.User, error)
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// Refresh rotates a refresh token: the old token is blacklisted and a
	// fresh pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout blacklists both tokens of the session.
	Logout(ctx context.Context, accessToken, refreshToken string) error
	// Me returns the account of the given user.
	Me(ctx context.Context, userID domain.UserID) (*domain.User, error)
}
