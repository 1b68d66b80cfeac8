package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pizzaops.io/admin-dashboard/app/domain/notice"
	"pizzaops.io/admin-dashboard/app/infrastructure/cache"
)

const waitFor = 2 * time.Second

// channel is a fake admin notification endpoint.
type channel struct {
	server   *httptest.Server
	accepted atomic.Int32
	refuse   atomic.Bool
	received chan Message

	mu    sync.Mutex
	conns []*websocket.Conn
}

func newChannel(t *testing.T) *channel {
	t.Helper()
	ch := &channel{received: make(chan Message, 8)}
	ch.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != AdminChannelPath || ch.refuse.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ch.accepted.Add(1)
		ch.mu.Lock()
		ch.conns = append(ch.conns, conn)
		ch.mu.Unlock()
		for {
			var msg Message
			if err := wsjson.Read(context.Background(), conn, &msg); err != nil {
				return
			}
			ch.received <- msg
		}
	}))
	t.Cleanup(ch.server.Close)
	return ch
}

func (ch *channel) url() string {
	return "ws" + strings.TrimPrefix(ch.server.URL, "http") + AdminChannelPath
}

func (ch *channel) latest(t *testing.T) *websocket.Conn {
	t.Helper()
	ch.mu.Lock()
	defer ch.mu.Unlock()
	require.NotEmpty(t, ch.conns)
	return ch.conns[len(ch.conns)-1]
}

func (ch *channel) push(t *testing.T, frame string) {
	t.Helper()
	require.NoError(t, ch.latest(t).Write(context.Background(), websocket.MessageText, []byte(frame)))
}

type fixture struct {
	listener *Listener
	cache    *cache.QueryCache
	notices  *notice.Center
}

func newFixture(t *testing.T, ch *channel, policy ReconnectPolicy) fixture {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	qc := cache.NewQueryCache(&cache.NoOpCacheService{})
	center := notice.NewCenter()
	l := NewListenerWithPolicy(ch.url(), policy, qc, center, jar)
	t.Cleanup(l.Disconnect)
	return fixture{listener: l, cache: qc, notices: center}
}

func waitState(t *testing.T, l *Listener, state State) {
	t.Helper()
	require.Eventually(t, func() bool { return l.State() == state }, waitFor, 5*time.Millisecond)
}

func TestConnectIsIdempotent(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: time.Hour})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.listener.Connect()
		}()
	}
	wg.Wait()
	waitState(t, f.listener, StateConnected)
	f.listener.Connect()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), ch.accepted.Load())
}

func TestOrderMessagesRaiseNoticeAndInvalidateOrders(t *testing.T) {
	testCases := []struct {
		name    string
		frame   string
		level   notice.Level
		message string
	}{
		{name: "created", frame: `{"type":"ORDER_CREATED","message":"Order #1042 placed","orderId":"o1"}`, level: notice.LevelSuccess, message: "Order #1042 placed"},
		{name: "status changed", frame: `{"type":"ORDER_STATUS_CHANGED","message":"Order #1042 is preparing"}`, level: notice.LevelSuccess, message: "Order #1042 is preparing"},
		{name: "delayed", frame: `{"type":"ORDER_DELAYED","message":"Order #1042 is running late"}`, level: notice.LevelInfo, message: "Order #1042 is running late"},
		{name: "cancelled without text", frame: `{"type":"ORDER_CANCELLED"}`, level: notice.LevelInfo, message: "Order cancelled"},
		{name: "payment successful", frame: `{"type":"PAYMENT_SUCCESSFUL","message":"Payment received for #1042"}`, level: notice.LevelSuccess, message: "Payment received for #1042"},
		{name: "payment failed", frame: `{"type":"PAYMENT_FAILED","message":"Card declined for #1042"}`, level: notice.LevelError, message: "Card declined for #1042"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ch := newChannel(t)
			f := newFixture(t, ch, FixedDelay{Delay: time.Hour})
			ordersKey := cache.NewKey(cache.ResourceOrders, url.Values{"page": {"1"}})
			statsKey := cache.ResourceKey(cache.ResourceOrderStats)
			menuKey := cache.ResourceKey(cache.ResourcePizzas)
			f.cache.Write(ordersKey, "orders")
			f.cache.Write(statsKey, "stats")
			f.cache.Write(menuKey, "menu")

			f.listener.Connect()
			waitState(t, f.listener, StateConnected)
			ch.push(t, tc.frame)

			require.Eventually(t, func() bool { return len(f.notices.Recent()) == 1 }, waitFor, 5*time.Millisecond)
			recent := f.notices.Recent()[0]
			assert.Equal(t, tc.level, recent.Level)
			assert.Equal(t, tc.message, recent.Message)
			require.Eventually(t, func() bool { return f.cache.State(ordersKey).Status == cache.StatusStale }, waitFor, 5*time.Millisecond)
			assert.Equal(t, cache.StatusStale, f.cache.State(statsKey).Status)
			assert.Equal(t, cache.StatusFresh, f.cache.State(menuKey).Status)
		})
	}
}

func TestUnknownAndMalformedFramesAreDropped(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: time.Hour})
	ordersKey := cache.ResourceKey(cache.ResourceOrders)
	f.cache.Write(ordersKey, "orders")

	f.listener.Connect()
	waitState(t, f.listener, StateConnected)
	ch.push(t, `{"type":"FOO","message":"ignore me"}`)
	ch.push(t, `not json`)
	ch.push(t, `{"type":"ORDER_CREATED","message":"after the noise"}`)

	require.Eventually(t, func() bool { return len(f.notices.Recent()) == 1 }, waitFor, 5*time.Millisecond)
	assert.Equal(t, "after the noise", f.notices.Recent()[0].Message)
	assert.Equal(t, StateConnected, f.listener.State())
	assert.Equal(t, int32(1), ch.accepted.Load())
}

func TestUnexpectedCloseReconnectsOnce(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: 30 * time.Millisecond})

	f.listener.Connect()
	waitState(t, f.listener, StateConnected)
	require.NoError(t, ch.latest(t).Close(websocket.StatusGoingAway, "server restart"))

	require.Eventually(t, func() bool { return ch.accepted.Load() == 2 }, waitFor, 5*time.Millisecond)
	waitState(t, f.listener, StateConnected)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), ch.accepted.Load())
}

func TestDisconnectTearsDownWithoutReconnect(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: 20 * time.Millisecond})

	f.listener.Connect()
	waitState(t, f.listener, StateConnected)
	f.listener.Disconnect()

	assert.Equal(t, StateDisconnected, f.listener.State())
	assert.ErrorIs(t, f.listener.Send(context.Background(), Message{Type: MessageOrderCreated}), ErrNotConnected)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), ch.accepted.Load())
	assert.Equal(t, StateDisconnected, f.listener.State())
	assert.False(t, f.listener.Status().Session)
}

func TestDisconnectCancelsPendingReconnect(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: 80 * time.Millisecond})

	f.listener.Connect()
	waitState(t, f.listener, StateConnected)
	require.NoError(t, ch.latest(t).Close(websocket.StatusGoingAway, "bye"))
	waitState(t, f.listener, StateDisconnected)
	f.listener.Disconnect()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), ch.accepted.Load())
}

func TestGivesUpAfterMaxRetriesAndRevives(t *testing.T) {
	ch := newChannel(t)
	ch.refuse.Store(true)
	f := newFixture(t, ch, FixedDelay{Delay: 5 * time.Millisecond, MaxRetries: 2})

	f.listener.Connect()
	require.Eventually(t, func() bool { return f.listener.Status().GaveUp }, waitFor, 5*time.Millisecond)
	assert.Equal(t, StateDisconnected, f.listener.State())
	assert.Equal(t, 3, f.listener.Status().Attempts)

	ch.refuse.Store(false)
	assert.True(t, f.listener.Revive())
	waitState(t, f.listener, StateConnected)
	assert.False(t, f.listener.Revive())
}

func TestSend(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: time.Hour})

	assert.ErrorIs(t, f.listener.Send(context.Background(), Message{Type: "PING"}), ErrNotConnected)

	f.listener.Connect()
	waitState(t, f.listener, StateConnected)
	require.NoError(t, f.listener.Send(context.Background(), Message{Type: "PING", OrderID: "o1"}))

	select {
	case msg := <-ch.received:
		assert.Equal(t, MessageType("PING"), msg.Type)
		assert.Equal(t, "o1", msg.OrderID)
	case <-time.After(waitFor):
		t.Fatal("message not received")
	}
}

func TestDialCarriesSessionCookies(t *testing.T) {
	var cookie atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("accessToken"); err == nil {
			cookie.Store(c.Value)
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		_, _, _ = conn.Read(context.Background())
	}))
	defer server.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	serverURL, _ := url.Parse(server.URL)
	jar.SetCookies(serverURL, []*http.Cookie{{Name: "accessToken", Value: "t1", Path: "/"}})
	l := NewListenerWithPolicy("ws"+strings.TrimPrefix(server.URL, "http")+AdminChannelPath, FixedDelay{Delay: time.Hour},
		cache.NewQueryCache(&cache.NoOpCacheService{}), notice.NewCenter(), jar)
	defer l.Disconnect()

	l.Connect()
	waitState(t, l, StateConnected)
	assert.Equal(t, "t1", cookie.Load())
}

func TestSessionObserverDrivesConnection(t *testing.T) {
	ch := newChannel(t)
	f := newFixture(t, ch, FixedDelay{Delay: time.Hour})

	f.listener.SessionStarted(context.Background(), nil)
	waitState(t, f.listener, StateConnected)
	f.listener.SessionEnded()
	assert.Equal(t, StateDisconnected, f.listener.State())
}
