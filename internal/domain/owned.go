package domain

import (
	"fmt"
	"sync"
)

// Ledger tracks owned allocations that have not been released yet.
// It is safe for concurrent use.
type Ledger struct {
	mu       sync.Mutex
	live     int
	acquired int
	released int
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Live returns the number of allocations still held.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live
}

// Stats returns how many allocations were made and how many were released.
func (l *Ledger) Stats() (acquired, released int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired, l.released
}

// Check reports a KindLeak error when allocations are still live.
func (l *Ledger) Check() error {
	if n := l.Live(); n != 0 {
		return &OpError{
			Op:   "ledger.check",
			Kind: KindLeak,
			Err:  fmt.Errorf("%d live: %w", n, ErrLeak),
		}
	}
	return nil
}

func (l *Ledger) acquire() {
	l.mu.Lock()
	l.live++
	l.acquired++
	l.mu.Unlock()
}

func (l *Ledger) release() {
	l.mu.Lock()
	l.live--
	l.released++
	l.mu.Unlock()
}

// Owned is a value with a single owner that must release it exactly once.
type Owned[T any] struct {
	mu       sync.Mutex
	ledger   *Ledger
	value    T
	released bool
}

// Allocate registers v with ledger and hands ownership to the caller.
func Allocate[T any](ledger *Ledger, v T) *Owned[T] {
	ledger.acquire()
	return &Owned[T]{ledger: ledger, value: v}
}

// Value returns the held value, or the zero value once released.
func (o *Owned[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

func (o *Owned[T]) Released() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.released
}

// Release drops the value. A second call fails with KindDoubleRelease and
// leaves the ledger untouched.
func (o *Owned[T]) Release() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.released {
		return &OpError{
			Op:   "owned.release",
			Kind: KindDoubleRelease,
			Err:  ErrReleased,
		}
	}

	var zero T
	o.value = zero
	o.released = true
	o.ledger.release()
	return nil
}
