package notify

import (
	"sync"
	"time"
)

// DefaultTTL matches the toast lifetime of the dashboard.
const DefaultTTL = 5 * time.Second

type entry struct {
	seq uint64
	msg string
}

// Center keeps an ordered, auto-expiring feed of human-readable mutation
// events. Posting never blocks the request path; each message schedules
// its own removal after the configured TTL, so under constant load the
// queue length stays bounded by posting rate times TTL.
type Center struct {
	mu  sync.Mutex
	ttl time.Duration
	seq uint64
	gen uint64
	q   []entry
}

func New(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Post appends a message and schedules its removal.
func (c *Center) Post(msg string) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	gen := c.gen
	c.q = append(c.q, entry{seq: seq, msg: msg})
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() {
		c.expire(gen, seq)
	})
}

// expire removes one message by sequence number. Messages are appended in
// sequence order and share one TTL, so removal is always oldest-first. A
// timer firing after Clear sees a newer generation and becomes a no-op.
func (c *Center) expire(gen, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	for i, e := range c.q {
		if e.seq == seq {
			c.q = append(c.q[:i], c.q[i+1:]...)
			return
		}
	}
}

// Clear empties the feed immediately. Pending removals are cancelled
// logically: their timers still fire but match nothing.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.q = nil
	c.gen++
}

// Messages returns the current feed in insertion order.
func (c *Center) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.q))
	for i, e := range c.q {
		out[i] = e.msg
	}
	return out
}

// Len reports the number of messages currently alive.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.q)
}
