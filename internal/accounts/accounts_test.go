package accounts_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/accounts"
	mockcache "shopapi/pkg/cache/mock"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
)

func testIssuer(t *testing.T) *accounts.TokenIssuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	issuer, err := accounts.NewTokenIssuer(string(privPEM), "", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	return issuer
}

func newTestAccounts(t *testing.T) (*mockstorage.MockStorage, *mockcache.MockTokenBlacklist, accounts.Accounts) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	bl := mockcache.NewMockTokenBlacklist(ctrl)

	return st, bl, accounts.New(st, testIssuer(t), bl)
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
}

func TestAccounts_Register_success(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			require.Equal(t, "user@example.com", user.Email)
			require.Equal(t, domain.RoleUser, user.Role)
			require.Equal(t, domain.UserStatusActive, user.Status)
			require.NoError(t,
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))

			user.ID = domain.UserID(uuid.New())

			return &user, nil
		},
	)

	user, err := svc.Register(context.Background(), accounts.RegisterReq{
		// mixed case collapses to lower before storing
		Email:    "User@Example.com",
		Password: "secret-password",
		Nickname: "tester",
	})
	require.NoError(t, err)
	require.Equal(t, "user@example.com", user.Email)
}

func TestAccounts_Register_duplicateEmail(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, err := svc.Register(context.Background(), accounts.RegisterReq{
		Email:    "user@example.com",
		Password: "secret-password",
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAccounts_Register_shortPassword(t *testing.T) {
	_, _, svc := newTestAccounts(t)

	_, err := svc.Register(context.Background(), accounts.RegisterReq{
		Email:    "user@example.com",
		Password: "short",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAccounts_Login_success(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil)

	got, pair, err := svc.Login(context.Background(), "user@example.com", "secret-password")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAccounts_Login_wrongPassword(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, _, err := svc.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_Login_unknownEmail(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_Login_inactiveAccount(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	user.Status = domain.UserStatusInactive
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, _, err := svc.Login(context.Background(), "user@example.com", "secret-password")
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestAccounts_Refresh_rotates(t *testing.T) {
	st, bl, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, pair, err := svc.Login(context.Background(), user.Email, "secret-password")
	require.NoError(t, err)

	bl.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(false, nil)
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	// the used refresh token must land on the blacklist
	bl.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, next.AccessToken)
	require.NotEqual(t, pair.RefreshToken, next.RefreshToken)
}

func TestAccounts_Refresh_revokedToken(t *testing.T) {
	st, bl, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, pair, err := svc.Login(context.Background(), user.Email, "secret-password")
	require.NoError(t, err)

	bl.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_Refresh_accessTokenRejected(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, pair, err := svc.Login(context.Background(), user.Email, "secret-password")
	require.NoError(t, err)

	// an access token must not be usable as a refresh token
	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_Logout_blacklistsBothTokens(t *testing.T) {
	st, bl, svc := newTestAccounts(t)

	user := activeUser(t, "secret-password")
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, pair, err := svc.Login(context.Background(), user.Email, "secret-password")
	require.NoError(t, err)

	bl.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))
}

func TestAccounts_Me_notFound(t *testing.T) {
	st, _, svc := newTestAccounts(t)

	st.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Me(context.Background(), domain.UserID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
