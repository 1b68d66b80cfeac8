package main

import (
	"context"

	"github.com/mileusna/crontab"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/cron"
	"pizzaops.io/admin-dashboard/app/domain/healthcheck"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	"pizzaops.io/admin-dashboard/app/interfaces/http"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

type Application struct {
	HttpServer         *http.HttpServer
	AuthService        *auth.AuthService
	Listener           *realtime.Listener
	CronService        *cron.CronService
	HealthcheckService *healthcheck.HealthcheckCrontabService
	Persister          cache.CacheService
}

func (application *Application) Start() {
	ctx := context.Background()
	application.AuthService.AddObserver(application.Listener)
	if user, err := application.AuthService.Restore(ctx); err != nil {
		logger.GetLogger().Warnf("failed to restore session: %v", err)
	} else if user != nil {
		logger.GetLogger().Infof("restored session for %s", user.Email)
	}

	ctab := crontab.New()
	if err := application.CronService.Start(ctx, ctab); err != nil {
		panic(err)
	}
	if err := application.HealthcheckService.Start(ctx, ctab); err != nil {
		panic(err)
	}
	defer func() {
		ctab.Shutdown()
		application.Listener.Disconnect()
		if err := application.Persister.Close(); err != nil {
			logger.GetLogger().Warnf("failed to close cache persister: %v", err)
		}
	}()

	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	application.Start()
}
