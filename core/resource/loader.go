package resource

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle of a view consuming a service.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ErrNothingToRetry is returned by Retry before the first Load.
var ErrNothingToRetry = errors.New("nothing to retry: no previous load")

// Snapshot is the observable state of a Loader.
type Snapshot[T any] struct {
	State State
	Data  T
	Err   error
}

// Loader drives Idle -> Loading -> Success|Failed for one query function and
// remembers the last params so a failed load can be retried.
//
// Loads are not cancelled when a newer one starts. A slow earlier load that
// finishes last overwrites the newer result.
type Loader[P, T any] struct {
	fetch func(context.Context, P) (T, error)

	mu      sync.Mutex
	current Snapshot[T]
	last    P
	loaded  bool
	notify  func(Snapshot[T])
}

func NewLoader[P, T any](fetch func(context.Context, P) (T, error)) *Loader[P, T] {
	return &Loader[P, T]{fetch: fetch}
}

// OnChange registers fn to observe every state transition.
func (l *Loader[P, T]) OnChange(fn func(Snapshot[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notify = fn
}

// Load enters Loading and runs the query with p.
func (l *Loader[P, T]) Load(ctx context.Context, p P) (T, error) {
	l.mu.Lock()
	l.last = p
	l.loaded = true
	l.current.State = StateLoading
	l.emit()
	l.mu.Unlock()

	data, err := l.fetch(ctx, p)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.current.State = StateFailed
		l.current.Err = err
	} else {
		l.current = Snapshot[T]{State: StateSuccess, Data: data}
	}
	l.emit()
	return data, err
}

// Retry re-runs the query with the last params.
func (l *Loader[P, T]) Retry(ctx context.Context) (T, error) {
	l.mu.Lock()
	p, ok := l.last, l.loaded
	l.mu.Unlock()

	if !ok {
		var zero T
		return zero, ErrNothingToRetry
	}
	return l.Load(ctx, p)
}

func (l *Loader[P, T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// LastParams returns the params of the latest Load.
func (l *Loader[P, T]) LastParams() (P, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.loaded
}

func (l *Loader[P, T]) emit() {
	if l.notify != nil {
		l.notify(l.current)
	}
}
