package diag_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/diag"
	"shopapi/pkg/logger"
	mockstorage "shopapi/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestSweep_allUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	store.EXPECT().Ping(gomock.Any()).Return(nil)

	checks := diag.New(server.URL, store, nil).Sweep(context.Background())

	require.Len(t, checks, 7)
	for _, check := range checks {
		require.True(t, check.OK(), check.Name)
	}
	require.True(t, diag.AnyAlive(checks))
}

func TestSweep_authErrorsCountAsAlive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	checks := diag.New(server.URL, nil, nil).Sweep(context.Background())

	for _, check := range checks {
		require.True(t, check.OK(), check.Name)
	}
}

func TestSweep_serverErrorsFailTheProbe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checks := diag.New(server.URL, nil, nil).Sweep(context.Background())

	for _, check := range checks {
		require.False(t, check.OK(), check.Name)
	}
	require.False(t, diag.AnyAlive(checks))
}

func TestSweep_brokenStoreKeepsSweeping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	store.EXPECT().Ping(gomock.Any()).Return(fmt.Errorf("connection refused"))

	checks := diag.New(server.URL, store, nil).Sweep(context.Background())

	require.Len(t, checks, 7)
	require.False(t, checks[len(checks)-1].OK())
	require.True(t, diag.AnyAlive(checks))
}
