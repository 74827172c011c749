package notifypoll

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is how often the poller refreshes when not
// configured otherwise.
const DefaultInterval = 30 * time.Second

// Poller periodically refreshes a notification snapshot. A failed
// refresh keeps the previous snapshot; consumers always see the last
// good feed, never an empty flash.
type Poller struct {
	client   *Client
	interval time.Duration
	onUpdate func([]Notification)
	onError  func(error)

	mu       sync.RWMutex
	snapshot []Notification
}

// PollerOption customises a Poller.
type PollerOption func(*Poller)

// WithInterval overrides the refresh interval.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithOnUpdate registers a callback invoked after every successful
// refresh with the new snapshot.
func WithOnUpdate(fn func([]Notification)) PollerOption {
	return func(p *Poller) {
		p.onUpdate = fn
	}
}

// WithOnError registers a callback invoked when a refresh fails.
func WithOnError(fn func(error)) PollerOption {
	return func(p *Poller) {
		p.onError = fn
	}
}

// NewPoller creates a poller around client.
func NewPoller(client *Client, opts ...PollerOption) *Poller {
	p := &Poller{
		client:   client,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start refreshes immediately, then on every interval tick until ctx is
// cancelled. It blocks; run it in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// Refresh fetches once, outside the interval schedule.
func (p *Poller) Refresh(ctx context.Context) error {
	notifications, err := p.client.Fetch(ctx)
	if err != nil {
		return err
	}
	p.setSnapshot(notifications)
	return nil
}

// Snapshot returns the most recent successfully fetched feed.
func (p *Poller) Snapshot() []Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Notification, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// UnreadCount reports how many items in the current snapshot are
// unread.
func (p *Poller) UnreadCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	count := 0
	for _, n := range p.snapshot {
		if !n.Read {
			count++
		}
	}
	return count
}

func (p *Poller) refresh(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		if p.onError != nil {
			p.onError(err)
		}
		return
	}
	if p.onUpdate != nil {
		p.onUpdate(p.Snapshot())
	}
}

func (p *Poller) setSnapshot(notifications []Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = notifications
}
