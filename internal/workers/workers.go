package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-gallery-replica/internal/logger"
)

// ErrWorkerExists is returned when a worker name is registered twice.
var ErrWorkerExists = errors.New("worker already registered")

type Workers struct {
	cron *cron.Cron

	mu      sync.RWMutex
	entries map[string]cron.EntryID

	logger *logger.Logger
}

// NewWorkers creates an idle scheduler. Panics inside a worker are
// recovered and logged, and a worker still running when its next tick
// arrives skips that tick.
func NewWorkers(log *logger.Logger) *Workers {
	cl := cronLogger{log: log}

	return &Workers{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		entries: make(map[string]cron.EntryID),
		logger:  log,
	}
}

// Add schedules worker with a robfig/cron spec ("@every 5m",
// "*/10 * * * *").
func (w *Workers) Add(spec string, worker Worker) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	name := worker.Name()
	if _, exists := w.entries[name]; exists {
		return fmt.Errorf("%w: %s", ErrWorkerExists, name)
	}

	id, err := w.cron.AddJob(spec, worker)
	if err != nil {
		return fmt.Errorf("schedule worker %q with spec %q: %w", name, spec, err)
	}
	w.entries[name] = id

	w.logger.Info().
		Str("func", "Workers.Add").
		Str("worker", name).
		Str("spec", spec).
		Msg("worker scheduled")

	return nil
}

// NextRun reports when the named worker fires next. ok is false for an
// unknown name or before the scheduler has started.
func (w *Workers) NextRun(name string) (time.Time, bool) {
	w.mu.RLock()
	id, exists := w.entries[name]
	w.mu.RUnlock()

	if !exists {
		return time.Time{}, false
	}

	entry := w.cron.Entry(id)
	if !entry.Valid() || entry.Next.IsZero() {
		return time.Time{}, false
	}
	return entry.Next, true
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running workers to return.
func (w *Workers) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "Workers.Run").Msg("starting workers")
	w.cron.Start()

	<-ctx.Done()

	w.logger.Info().Str("func", "Workers.Run").Msg("stopping workers")
	<-w.cron.Stop().Done()

	return nil
}

// cronLogger routes robfig/cron's logs through zerolog.
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.log.Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
