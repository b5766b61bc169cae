// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// feed hands observable emissions to the bubbletea loop. It keeps only the
// latest value: a view that is busy rendering skips intermediate lists.
type feed[T any] struct {
	ch chan T
}

func newFeed[T any]() *feed[T] {
	return &feed[T]{ch: make(chan T, 1)}
}

// push is the subscriber callback. Observables deliver serially, so push has
// a single producer at any time.
func (f *feed[T]) push(v T) {
	select {
	case <-f.ch:
	default:
	}
	select {
	case f.ch <- v:
	default:
	}
}

// next waits for the following emission and wraps it into a message.
func (f *feed[T]) next(ctx context.Context, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-f.ch:
			return wrap(v)
		case <-ctx.Done():
			return nil
		}
	}
}
