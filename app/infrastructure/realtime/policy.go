package realtime

import (
	"strings"
	"time"

	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

// ReconnectPolicy decides how long to wait before reconnect attempt n
// (1-based). ok is false once the listener should give up.
type ReconnectPolicy interface {
	Next(attempt int) (delay time.Duration, ok bool)
}

// FixedDelay waits the same Delay before every attempt. MaxRetries of zero
// retries forever.
type FixedDelay struct {
	Delay      time.Duration
	MaxRetries int
}

func (p FixedDelay) Next(attempt int) (time.Duration, bool) {
	if p.MaxRetries > 0 && attempt > p.MaxRetries {
		return 0, false
	}
	return p.Delay, true
}

// ExponentialBackoff doubles the wait after every failed attempt, capped at
// MaxDelay when set.
type ExponentialBackoff struct {
	Delay      time.Duration
	MaxDelay   time.Duration
	MaxRetries int
}

func (p ExponentialBackoff) Next(attempt int) (time.Duration, bool) {
	if p.MaxRetries > 0 && attempt > p.MaxRetries {
		return 0, false
	}
	delay := p.Delay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			return p.MaxDelay, true
		}
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay, true
}

func NewReconnectPolicy() ReconnectPolicy {
	env := environment_variables.EnvironmentVariables
	switch strings.ToLower(env.RECONNECT_POLICY) {
	case "exponential":
		return ExponentialBackoff{Delay: env.RECONNECT_DELAY, MaxDelay: env.RECONNECT_MAX_DELAY, MaxRetries: env.RECONNECT_MAX_RETRIES}
	case "", "fixed":
		return FixedDelay{Delay: env.RECONNECT_DELAY, MaxRetries: env.RECONNECT_MAX_RETRIES}
	default:
		logger.GetLogger().Warnf("unknown reconnect policy %q, using fixed delay", env.RECONNECT_POLICY)
		return FixedDelay{Delay: env.RECONNECT_DELAY, MaxRetries: env.RECONNECT_MAX_RETRIES}
	}
}
