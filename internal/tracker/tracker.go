package tracker

import (
	"sync"
)

// CountTracker holds per-user live badge counts (cart units, favorites) and
// fans updates out to subscribers. It is constructed once and injected where
// needed; there is no package-level instance.
type CountTracker struct {
	mu     sync.RWMutex
	counts map[string]int
	subs   map[string]map[int64]chan int
	nextID int64
}

// Subscription is a handle to one subscriber's update stream. Unsubscribe is
// idempotent and closes the channel.
type Subscription struct {
	ch   chan int
	once sync.Once
	stop func()
}

func (s *Subscription) Updates() <-chan int {
	return s.ch
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(s.stop)
}

func CreateCountTracker() *CountTracker {
	return &CountTracker{
		counts: make(map[string]int),
		subs:   make(map[string]map[int64]chan int),
	}
}

func (t *CountTracker) Subscribe(userID string) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID

	ch := make(chan int, 1)
	if _, ok := t.subs[userID]; !ok {
		t.subs[userID] = make(map[int64]chan int)
	}
	t.subs[userID][id] = ch

	// Deliver the current count immediately so subscribers never start blank.
	ch <- t.counts[userID]

	return &Subscription{
		ch: ch,
		stop: func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if chans, ok := t.subs[userID]; ok {
				delete(chans, id)
				if len(chans) == 0 {
					delete(t.subs, userID)
				}
			}
			close(ch)
		},
	}
}

// Publish records the count and notifies subscribers without blocking. A slow
// subscriber keeps only the latest value.
func (t *CountTracker) Publish(userID string, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[userID] = count

	for _, ch := range t.subs[userID] {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- count:
		default:
		}
	}
}

func (t *CountTracker) Count(userID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.counts[userID]
}

func (t *CountTracker) Reset(userID string) {
	t.Publish(userID, 0)
}
