package tracker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// WatchFunc opens a change stream scoped to one user's documents.
type WatchFunc func(ctx context.Context, userID string) (*mongo.ChangeStream, error)

// ResyncFunc recomputes the user's count after a pushed change. Pushed events
// are not ordered relative to local writes, so every event triggers a full
// recount instead of an incremental delta.
type ResyncFunc func(ctx context.Context, userID string)

// Watcher keeps at most one active change stream per user. Listening again
// for the same user replaces the previous stream.
type Watcher struct {
	mu     sync.Mutex
	active map[string]context.CancelFunc
	watch  WatchFunc
	resync ResyncFunc
	name   string
}

func CreateWatcher(name string, watch WatchFunc, resync ResyncFunc) *Watcher {
	return &Watcher{
		active: make(map[string]context.CancelFunc),
		watch:  watch,
		resync: resync,
		name:   name,
	}
}

func (w *Watcher) Listen(userID string) {
	w.mu.Lock()
	if cancel, ok := w.active[userID]; ok {
		cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.active[userID] = cancel
	w.mu.Unlock()

	go func() {
		stream, err := w.watch(ctx, userID)
		if err != nil {
			log.Error().Err(err).Str("component", w.name).Msg("failed to open change stream")
			return
		}
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			w.resync(ctx, userID)
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("component", w.name).Msg("change stream ended")
		}
	}()
}

func (w *Watcher) Stop(userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if cancel, ok := w.active[userID]; ok {
		cancel()
		delete(w.active, userID)
	}
}

func (w *Watcher) StopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for userID, cancel := range w.active {
		cancel()
		delete(w.active, userID)
	}
}
