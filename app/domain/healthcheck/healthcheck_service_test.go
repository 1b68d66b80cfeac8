package healthcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/infrastructure/realtime"
)

type fakeListener struct {
	status  realtime.Status
	revived int
}

func (f *fakeListener) Status() realtime.Status { return f.status }

func (f *fakeListener) Revive() bool {
	if !f.status.GaveUp {
		return false
	}
	f.revived++
	f.status = realtime.Status{State: realtime.StateConnecting, Session: true}
	return true
}

type brokenPersister struct {
	cache.NoOpCacheService
}

func (brokenPersister) HealthCheck(ctx context.Context) error {
	return errors.New("dial tcp 10.0.0.5:6379: connection refused")
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name            string
		listener        *fakeListener
		persister       cache.CacheService
		expectedHealthy bool
		expectedRevived int
	}{
		{
			name:            "all good",
			listener:        &fakeListener{status: realtime.Status{State: realtime.StateConnected, Session: true}},
			persister:       &cache.NoOpCacheService{},
			expectedHealthy: true,
		},
		{
			name:            "listener gave up",
			listener:        &fakeListener{status: realtime.Status{State: realtime.StateDisconnected, Session: true, GaveUp: true}},
			persister:       &cache.NoOpCacheService{},
			expectedRevived: 1,
		},
		{
			name:      "persister down",
			listener:  &fakeListener{status: realtime.Status{State: realtime.StateDisconnected}},
			persister: &brokenPersister{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := NewService(tc.listener, tc.persister)

			report := service.Check(context.Background())

			assert.Equal(t, tc.expectedHealthy, report.Healthy)
			assert.Equal(t, tc.expectedRevived, tc.listener.revived)
		})
	}
}
