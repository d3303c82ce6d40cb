package client

import (
	"context"
	"sync"
)

// MirrorState is the lifecycle of a page-local list.
type MirrorState int

const (
	StateLoading MirrorState = iota
	StateReady
	StateMutating
	StateError
)

// Mirror is the page-local in-memory copy of one remote list. Every
// mutation goes remote first; on success the list is refetched through the
// read accessor and replaced wholesale, never patched row by row. A failed
// mutation leaves the mirror exactly as it was. Overlapping mutations each
// trigger their own refetch and the last one to resolve wins; no
// cancellation or de-duplication, list sizes make races unobservable.
type Mirror[T any] struct {
	mu    sync.Mutex
	fetch func(context.Context) ([]T, error)

	items []T
	state MirrorState
	err   error
}

func NewMirror[T any](fetch func(context.Context) ([]T, error)) *Mirror[T] {
	return &Mirror[T]{fetch: fetch, state: StateLoading}
}

// Load runs the initial fetch and replaces the mirror with its result.
func (m *Mirror[T]) Load(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	items, err := m.fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateError
		m.err = err
		return err
	}
	m.items = items
	m.state = StateReady
	m.err = nil
	return nil
}

// Mutate runs the remote mutation, then refetches and replaces the mirror.
// On mutation failure the mirror is untouched and the error is returned for
// the caller to surface.
func (m *Mirror[T]) Mutate(ctx context.Context, mutation func(context.Context) error) error {
	m.mu.Lock()
	m.state = StateMutating
	m.mu.Unlock()

	if err := m.mutateAndRefetch(ctx, mutation); err != nil {
		return err
	}
	return nil
}

func (m *Mirror[T]) mutateAndRefetch(ctx context.Context, mutation func(context.Context) error) error {
	if err := mutation(ctx); err != nil {
		m.mu.Lock()
		m.state = StateReady
		m.mu.Unlock()
		return err
	}

	items, err := m.fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		// The mutation settled remotely; only the refresh failed. Keep the
		// stale mirror visible rather than blanking the page.
		m.state = StateError
		m.err = err
		return err
	}
	m.items = items
	m.state = StateReady
	m.err = nil
	return nil
}

// Items returns a copy of the mirrored list.
func (m *Mirror[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]T, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Mirror[T]) State() MirrorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mirror[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Stateful is the part of a mirror a page needs to combine several lists.
type Stateful interface {
	State() MirrorState
	Err() error
}

// PageState folds the mirrors a page depends on into one state: loading
// until every mirror has resolved at least once, error if any failed.
func PageState(mirrors ...Stateful) MirrorState {
	for _, m := range mirrors {
		if m.State() == StateError {
			return StateError
		}
	}
	for _, m := range mirrors {
		if m.State() == StateLoading {
			return StateLoading
		}
	}
	return StateReady
}
