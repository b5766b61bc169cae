// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"sync/atomic"
)

// Observable holds a single value and multicasts every change to its
// subscribers. A new subscriber immediately receives the current value and
// afterwards every value set after it attached, in order, exactly once.
//
// Delivery is serialized: callbacks never run concurrently with each other.
// A callback may call back into the owner of the Observable; the nested
// emission is queued and delivered once the current one has reached every
// subscriber.
type Observable[T any] struct {
	mu         sync.Mutex
	value      T
	version    uint64
	subs       []*subscriber[T]
	queue      []emission[T]
	delivering bool
	clone      func(T) T
}

type subscriber[T any] struct {
	fn     func(T)
	since  uint64
	active atomic.Bool
}

type emission[T any] struct {
	version uint64
	value   T
	target  *subscriber[T]
}

// NewObservable returns an Observable seeded with initial. clone is applied
// to every value handed out so that subscribers cannot alias internal state;
// nil means values are passed as is.
func NewObservable[T any](initial T, clone func(T) T) *Observable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Observable[T]{value: initial, clone: clone}
}

// Value returns a copy of the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.clone(o.value)
}

// Update applies mutate to the current value and emits the result exactly once.
func (o *Observable[T]) Update(mutate func(T) T) {
	o.mu.Lock()
	o.value = mutate(o.value)
	o.version++
	o.enqueueAndDrain(emission[T]{version: o.version, value: o.clone(o.value)})
}

// Set replaces the current value and emits it.
func (o *Observable[T]) Set(v T) {
	o.Update(func(T) T { return v })
}

// Subscribe registers fn and replays the current value to it. The returned
// function detaches fn; it is safe to call more than once.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s := &subscriber[T]{fn: fn}
	s.active.Store(true)

	o.mu.Lock()
	s.since = o.version
	o.subs = append(o.subs, s)
	o.enqueueAndDrain(emission[T]{version: o.version, value: o.clone(o.value), target: s})

	return func() { o.detach(s) }
}

// Subscribers reports the number of attached subscribers.
func (o *Observable[T]) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

func (o *Observable[T]) detach(s *subscriber[T]) {
	if !s.active.CompareAndSwap(true, false) {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	for i, sub := range o.subs {
		if sub == s {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}

// enqueueAndDrain must be called with mu held and releases it. The goroutine
// that finds the queue idle becomes the deliverer until the queue is empty.
func (o *Observable[T]) enqueueAndDrain(e emission[T]) {
	o.queue = append(o.queue, e)
	if o.delivering {
		o.mu.Unlock()
		return
	}
	o.delivering = true
	o.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			o.mu.Lock()
			o.delivering = false
			o.mu.Unlock()
			panic(r)
		}
	}()

	for {
		e, targets, ok := o.next()
		if !ok {
			return
		}
		for _, s := range targets {
			if s.active.Load() {
				s.fn(e.value)
			}
		}
	}
}

func (o *Observable[T]) next() (emission[T], []*subscriber[T], bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.queue) == 0 {
		o.delivering = false
		return emission[T]{}, nil, false
	}

	e := o.queue[0]
	o.queue[0] = emission[T]{}
	o.queue = o.queue[1:]

	if e.target != nil {
		return e, []*subscriber[T]{e.target}, true
	}

	targets := make([]*subscriber[T], 0, len(o.subs))
	for _, s := range o.subs {
		if s.since < e.version {
			targets = append(targets, s)
		}
	}
	return e, targets, true
}
