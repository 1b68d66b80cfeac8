package auth

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/domain/common"
	"pizzaops.io/admin-dashboard/app/domain/mutation"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

var ErrNoSession = errors.New("no active session")

type AuthGateway interface {
	Login(ctx context.Context, req LoginRequest) error
	Me(ctx context.Context) *User
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// SessionObserver follows the signed-in user. SessionStarted may be called
// again for a session that is already running.
type SessionObserver interface {
	SessionStarted(ctx context.Context, user *User)
	SessionEnded()
}

type AuthService struct {
	gateway   AuthGateway
	cache     *cache.QueryCache
	mutations *mutation.Coordinator

	mu        sync.Mutex
	current   *User
	observers []SessionObserver
}

func NewAuthService(gateway AuthGateway, queryCache *cache.QueryCache, mutations *mutation.Coordinator) *AuthService {
	return &AuthService{
		gateway:   gateway,
		cache:     queryCache,
		mutations: mutations,
	}
}

func MeKey() cache.Key {
	return cache.ResourceKey(cache.ResourceMe)
}

func (s *AuthService) AddObserver(observers ...SessionObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observers...)
}

// CurrentUser returns the cached session user, probing the backend when the
// entry is missing or stale. A nil user means nobody is signed in.
func (s *AuthService) CurrentUser(ctx context.Context) (*User, error) {
	return cache.Ensure(ctx, s.cache, MeKey(), func(ctx context.Context) (*User, error) {
		return s.gateway.Me(ctx), nil
	})
}

// Session returns the user of the running session, or nil.
func (s *AuthService) Session() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	_, err := mutation.RunPlain(ctx, s.mutations, mutation.Plain[struct{}]{
		Resource:   cache.ResourceMe,
		Invalidate: []cache.Key{MeKey()},
		Request: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.Login(ctx, req)
		},
	})
	if err != nil {
		return nil, err
	}

	s.cache.Cancel(MeKey())
	s.cache.Remove(MeKey())
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	s.start(ctx, user)
	return user, nil
}

// Restore resumes a session left by an earlier run when the backend still
// recognises its cookies.
func (s *AuthService) Restore(ctx context.Context) (*User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil || user == nil {
		return nil, err
	}
	s.start(ctx, user)
	return user, nil
}

// Logout ends the session whatever the backend answers.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.gateway.Logout(ctx)
	if err != nil {
		logger.GetLogger().Warnf("logout request failed: %v", err)
	}
	s.end()
	return err
}

// Refresh renews the session cookies. A rejected refresh ends the session.
func (s *AuthService) Refresh(ctx context.Context) error {
	if s.Session() == nil {
		return ErrNoSession
	}
	err := s.gateway.Refresh(ctx)
	var apiErr *common.ApiError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		logger.GetLogger().Warnf("session refresh rejected, signing out: %v", err)
		s.end()
	}
	return err
}

func (s *AuthService) start(ctx context.Context, user *User) {
	s.mu.Lock()
	s.current = user
	observers := append([]SessionObserver(nil), s.observers...)
	s.mu.Unlock()

	logger.GetLogger().WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("session started")
	for _, o := range observers {
		o.SessionStarted(ctx, user)
	}
}

func (s *AuthService) end() {
	s.mu.Lock()
	s.current = nil
	observers := append([]SessionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.SessionEnded()
	}
	s.cache.Clear()
	logger.GetLogger().Info("session ended")
}
