package realtime

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/domain/auth"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

const AdminChannelPath = "/notifications/ws/admin"

var ErrNotConnected = errors.New("realtime: not connected")

type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// Status is a point-in-time view of the listener.
type Status struct {
	State    State `json:"state"`
	Session  bool  `json:"session"`
	Attempts int   `json:"attempts"`
	GaveUp   bool  `json:"gaveUp"`
}

// Listener keeps one websocket open to the admin notification channel while
// a session exists. Every attempt carries a generation; Disconnect bumps it so
// a dial or read that outlives it cannot touch the listener again.
type Listener struct {
	url      string
	client   *http.Client
	policy   ReconnectPolicy
	cache    *cache.QueryCache
	notifier notice.Notifier

	mu       sync.Mutex
	state    State
	session  bool
	gen      uint64
	conn     *websocket.Conn
	cancel   context.CancelFunc
	timer    *time.Timer
	attempts int
	gaveUp   bool
}

func NewListener(queryCache *cache.QueryCache, notifier notice.Notifier, jar http.CookieJar) *Listener {
	url := strings.TrimRight(environment_variables.EnvironmentVariables.WS_BASE_URL, "/") + AdminChannelPath
	return NewListenerWithPolicy(url, NewReconnectPolicy(), queryCache, notifier, jar)
}

func NewListenerWithPolicy(url string, policy ReconnectPolicy, queryCache *cache.QueryCache, notifier notice.Notifier, jar http.CookieJar) *Listener {
	return &Listener{
		url:      url,
		client:   &http.Client{Jar: jar},
		policy:   policy,
		cache:    queryCache,
		notifier: notifier,
		state:    StateDisconnected,
	}
}

func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Listener) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{State: l.state, Session: l.session, Attempts: l.attempts, GaveUp: l.gaveUp}
}

// Connect opens the channel. It is a no-op while connecting or connected.
func (l *Listener) Connect() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session = true
	l.gaveUp = false
	if l.state != StateDisconnected {
		return
	}
	l.stopTimerLocked()
	l.startLocked()
}

// Disconnect closes the channel and cancels any scheduled reconnect. The
// close does not go through the reconnect path.
func (l *Listener) Disconnect() {
	l.mu.Lock()
	l.session = false
	l.gen++
	l.stopTimerLocked()
	conn, cancel := l.conn, l.cancel
	l.conn, l.cancel = nil, nil
	wasOpen := l.state != StateDisconnected
	l.state = StateDisconnected
	l.attempts = 0
	l.gaveUp = false
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}
	if wasOpen {
		logger.GetLogger().Info("realtime: disconnected")
	}
}

// Revive restarts a listener that exhausted its reconnect policy while the
// session is still active. It reports whether an attempt was started.
func (l *Listener) Revive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.session || !l.gaveUp || l.state != StateDisconnected {
		return false
	}
	l.gaveUp = false
	l.attempts = 0
	l.startLocked()
	return true
}

// Send writes msg to the channel. It fails with ErrNotConnected unless the
// listener is connected.
func (l *Listener) Send(ctx context.Context, msg Message) error {
	l.mu.Lock()
	conn := l.conn
	connected := l.state == StateConnected
	l.mu.Unlock()
	if !connected || conn == nil {
		return ErrNotConnected
	}
	return wsjson.Write(ctx, conn, msg)
}

func (l *Listener) SessionStarted(ctx context.Context, user *auth.User) {
	l.Connect()
}

func (l *Listener) SessionEnded() {
	l.Disconnect()
}

func (l *Listener) startLocked() {
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.state = StateConnecting
	go l.run(ctx, gen)
}

func (l *Listener) stopTimerLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *Listener) run(ctx context.Context, gen uint64) {
	log := logger.GetLogger().WithFields(logrus.Fields{"url": l.url})
	conn, _, err := websocket.Dial(ctx, l.url, &websocket.DialOptions{HTTPClient: l.client})
	if err != nil {
		if ctx.Err() == nil {
			log.Warnf("realtime: dial failed: %v", err)
		}
		l.closed(gen)
		return
	}

	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		_ = conn.CloseNow()
		return
	}
	l.conn = conn
	l.state = StateConnected
	l.attempts = 0
	l.mu.Unlock()
	log.Info("realtime: connected")

	l.read(ctx, conn)
	l.closed(gen)
}

func (l *Listener) read(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.GetLogger().Infof("realtime: connection closed: %v", err)
			}
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.GetLogger().Errorf("realtime: failed to parse message: %v", err)
			continue
		}
		l.handle(msg)
	}
}

func (l *Listener) handle(msg Message) {
	h, ok := orderMessages[msg.Type]
	if !ok {
		logger.GetLogger().Infof("realtime: unknown message type: %s", msg.Type)
		return
	}
	logger.GetLogger().WithFields(logrus.Fields{"type": msg.Type, "order_id": msg.OrderID}).Debug("realtime: message received")

	text := msg.Message
	if text == "" {
		text = h.fallback
	}
	switch h.level {
	case notice.LevelError:
		l.notifier.Error(text)
	case notice.LevelInfo:
		l.notifier.Info(text)
	default:
		l.notifier.Success(text)
	}
	l.cache.Invalidate(cache.ResourceKey(cache.ResourceOrders), cache.ResourceKey(cache.ResourceOrderStats))
}

// closed runs when an attempt of generation gen ends on its own. Exactly one
// reconnect is scheduled while the session lasts.
func (l *Listener) closed(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.conn = nil
	l.state = StateDisconnected
	if !l.session {
		return
	}

	l.attempts++
	delay, ok := l.policy.Next(l.attempts)
	if !ok {
		l.gaveUp = true
		logger.GetLogger().Errorf("realtime: giving up after %d reconnect attempts", l.attempts-1)
		return
	}
	l.stopTimerLocked()
	l.timer = time.AfterFunc(delay, func() {
		l.reconnect(gen)
	})
}

func (l *Listener) reconnect(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen || !l.session || l.state != StateDisconnected {
		return
	}
	l.timer = nil
	logger.GetLogger().Info("realtime: attempting to reconnect")
	l.startLocked()
}
