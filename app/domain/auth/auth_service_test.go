package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/mocks/authmock"
)

var admin = &auth.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: "admin"}

type fixture struct {
	gateway  *authmock.MockAuthGateway
	observer *authmock.MockSessionObserver
	cache    *cache.QueryCache
	notices  *notice.Center
	service  *auth.AuthService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		gateway:  authmock.NewMockAuthGateway(ctrl),
		observer: authmock.NewMockSessionObserver(ctrl),
		cache:    cache.NewQueryCache(&cache.NoOpCacheService{}),
		notices:  notice.NewCenter(),
	}
	f.service = auth.NewAuthService(f.gateway, f.cache, mutation.NewCoordinator(f.cache, f.notices))
	f.service.AddObserver(f.observer)
	return f
}

func TestLoginReplacesCachedUserAndStartsSession(t *testing.T) {
	f := newFixture(t)
	f.cache.Write(auth.MeKey(), (*auth.User)(nil))
	req := auth.LoginRequest{Email: "asha@example.com", Password: "secret"}

	gomock.InOrder(
		f.gateway.EXPECT().Login(gomock.Any(), req).Return(nil),
		f.gateway.EXPECT().Me(gomock.Any()).Return(admin),
		f.observer.EXPECT().SessionStarted(gomock.Any(), admin),
	)

	user, err := f.service.Login(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, admin, user)
	assert.Equal(t, admin, f.service.Session())
	cached, ok := cache.Get[*auth.User](f.cache, auth.MeKey())
	require.True(t, ok)
	assert.Equal(t, admin, cached)
	assert.Equal(t, cache.StatusFresh, f.cache.State(auth.MeKey()).Status)
}

func TestLoginFailures(t *testing.T) {
	testCases := []struct {
		name          string
		req           auth.LoginRequest
		loginErr      error
		expectLogin   bool
		expectedError string
	}{
		{
			name:          "invalid email",
			req:           auth.LoginRequest{Email: "asha", Password: "secret"},
			expectedError: "email must be a valid email address",
		},
		{
			name:          "wrong password",
			req:           auth.LoginRequest{Email: "asha@example.com", Password: "nope"},
			loginErr:      &common.ApiError{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"},
			expectLogin:   true,
			expectedError: "Invalid email or password",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.expectLogin {
				f.gateway.EXPECT().Login(gomock.Any(), tc.req).Return(tc.loginErr)
			}

			user, err := f.service.Login(context.Background(), tc.req)

			require.Error(t, err)
			assert.Nil(t, user)
			assert.Equal(t, tc.expectedError, common.UserMessage(err))
			assert.Nil(t, f.service.Session())
		})
	}
}

func TestLoginWithoutSessionCookie(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil)
	f.gateway.EXPECT().Me(gomock.Any()).Return(nil)

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: "asha@example.com", Password: "secret"})

	assert.ErrorIs(t, err, auth.ErrNoSession)
}

func TestRestore(t *testing.T) {
	testCases := []struct {
		name        string
		me          *auth.User
		expectStart bool
	}{
		{name: "cookies still valid", me: admin, expectStart: true},
		{name: "signed out", me: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.gateway.EXPECT().Me(gomock.Any()).Return(tc.me)
			if tc.expectStart {
				f.observer.EXPECT().SessionStarted(gomock.Any(), tc.me)
			}

			user, err := f.service.Restore(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tc.me, user)
			assert.Equal(t, tc.me, f.service.Session())
		})
	}
}

func TestLogoutClearsEverythingEvenWhenBackendFails(t *testing.T) {
	testCases := []struct {
		name      string
		logoutErr error
	}{
		{name: "backend ok"},
		{name: "backend down", logoutErr: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.gateway.EXPECT().Me(gomock.Any()).Return(admin)
			f.observer.EXPECT().SessionStarted(gomock.Any(), admin)
			_, err := f.service.Restore(context.Background())
			require.NoError(t, err)
			f.cache.Write(cache.ResourceKey(cache.ResourceCrusts), []string{"thin"})

			gomock.InOrder(
				f.gateway.EXPECT().Logout(gomock.Any()).Return(tc.logoutErr),
				f.observer.EXPECT().SessionEnded(),
			)

			err = f.service.Logout(context.Background())

			assert.Equal(t, tc.logoutErr, err)
			assert.Nil(t, f.service.Session())
			assert.Equal(t, cache.StatusEmpty, f.cache.State(auth.MeKey()).Status)
			assert.Equal(t, cache.StatusEmpty, f.cache.State(cache.ResourceKey(cache.ResourceCrusts)).Status)
		})
	}
}

func TestRefresh(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.service.Refresh(context.Background()), auth.ErrNoSession)
	})

	t.Run("rejected refresh ends session", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Me(gomock.Any()).Return(admin)
		f.observer.EXPECT().SessionStarted(gomock.Any(), admin)
		_, _ = f.service.Restore(context.Background())
		f.gateway.EXPECT().Refresh(gomock.Any()).Return(&common.ApiError{Status: http.StatusUnauthorized, Code: "INVALID_TOKEN"})
		f.observer.EXPECT().SessionEnded()

		require.Error(t, f.service.Refresh(context.Background()))
		assert.Nil(t, f.service.Session())
	})

	t.Run("transient failure keeps session", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Me(gomock.Any()).Return(admin)
		f.observer.EXPECT().SessionStarted(gomock.Any(), admin)
		_, _ = f.service.Restore(context.Background())
		f.gateway.EXPECT().Refresh(gomock.Any()).Return(&common.ApiError{Status: http.StatusBadGateway})

		require.Error(t, f.service.Refresh(context.Background()))
		assert.Equal(t, admin, f.service.Session())
	})
}
