package healthcheck

import (
	"context"
	"time"

	"github.com/mileusna/crontab"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

const checkTimeout = 5 * time.Second

type RealtimeListener interface {
	Status() realtime.Status
	Revive() bool
}

type Report struct {
	Healthy   bool            `json:"healthy"`
	Persister string          `json:"persister"`
	Realtime  realtime.Status `json:"realtime"`
}

// HealthcheckCrontabService watches the cache persister and revives the
// realtime listener once it has given up reconnecting.
type HealthcheckCrontabService struct {
	Listener  RealtimeListener
	Persister cache.CacheService
}

func NewService(listener RealtimeListener, persister cache.CacheService) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		Listener:  listener,
		Persister: persister,
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) error {
	return ctab.AddJob("*/2 * * * *", func() {
		hs.Check(ctx)
	})
}

func (hs *HealthcheckCrontabService) Check(ctx context.Context) Report {
	report := hs.Report(ctx)
	if report.Persister != "ok" {
		logger.GetLogger().Warnf("healthcheck: cache persister unhealthy: %s", report.Persister)
	}
	if hs.Listener.Revive() {
		logger.GetLogger().Info("healthcheck: realtime listener had given up, reconnecting")
	}
	return report
}

// Report reads the current health without changing anything.
func (hs *HealthcheckCrontabService) Report(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	report := Report{Persister: "ok", Realtime: hs.Listener.Status()}
	if err := hs.Persister.HealthCheck(ctx); err != nil {
		report.Persister = err.Error()
	}
	report.Healthy = report.Persister == "ok" && !report.Realtime.GaveUp
	return report
}
