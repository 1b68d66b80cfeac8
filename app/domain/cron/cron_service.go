package cron

import (
	"context"
	"errors"

	"github.com/mileusna/crontab"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

type SessionRefresher interface {
	Session() *auth.User
	Refresh(ctx context.Context) error
}

// CronService keeps the session cookies alive while someone is signed in.
type CronService struct {
	Sessions SessionRefresher
}

func NewService(sessions SessionRefresher) *CronService {
	return &CronService{
		Sessions: sessions,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) error {
	return ctab.AddJob(environment_variables.EnvironmentVariables.SESSION_REFRESH_SCHEDULE, func() {
		cs.RefreshSession(ctx)
	})
}

// RefreshSession renews the session when one exists. It reports whether a
// refresh was sent.
func (cs *CronService) RefreshSession(ctx context.Context) bool {
	if cs == nil || cs.Sessions == nil || cs.Sessions.Session() == nil {
		return false
	}
	if err := cs.Sessions.Refresh(ctx); err != nil && !errors.Is(err, auth.ErrNoSession) {
		logger.GetLogger().Warnf("cron service: failed to refresh session: %v", err)
	}
	return true
}
