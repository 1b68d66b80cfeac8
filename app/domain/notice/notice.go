package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

const recentLimit = 50

// Notice is a transient message shown to staff.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Center logs every notice and fans it out to subscribers. Slow subscribers
// miss notices rather than block the publisher.
type Center struct {
	mu          sync.Mutex
	subscribers map[uint64]chan Notice
	nextID      uint64
	recent      []Notice
}

func NewCenter() *Center {
	return &Center{subscribers: make(map[uint64]chan Notice)}
}

func (c *Center) Success(message string) { c.Publish(LevelSuccess, message) }

func (c *Center) Error(message string) { c.Publish(LevelError, message) }

func (c *Center) Info(message string) { c.Publish(LevelInfo, message) }

func (c *Center) Publish(level Level, message string) Notice {
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	entry := logger.GetLogger().WithFields(logrus.Fields{"notice_id": n.ID, "notice_level": level})
	if level == LevelError {
		entry.Warn(message)
	} else {
		entry.Info(message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = append(c.recent, n)
	if len(c.recent) > recentLimit {
		c.recent = c.recent[len(c.recent)-recentLimit:]
	}
	for id, ch := range c.subscribers {
		select {
		case ch <- n:
		default:
			logger.GetLogger().Warnf("notice: subscriber %d is full, dropped %s", id, n.ID)
		}
	}
	return n
}

// Subscribe returns a channel of notices published from now on. cancel closes it.
func (c *Center) Subscribe(buffer int) (<-chan Notice, func()) {
	ch := make(chan Notice, buffer)
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
			close(ch)
		})
	}
}

// Recent returns the latest notices, oldest first.
func (c *Center) Recent() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.recent))
	copy(out, c.recent)
	return out
}
