package rwcell

import "sync/atomic"

const (
	// Sentinel is the counter value reserved for an exclusive borrow. It
	// sits at the top of the counter's range so that a shared increment can
	// only land on it by overflowing past the ceiling, which is itself a
	// borrow violation.
	Sentinel = ^uint32(0)

	// MaxSharedBorrows is the number of shared borrows that may coexist on
	// one cell. Workloads are not expected to come anywhere near it.
	MaxSharedBorrows = Sentinel - 1
)

type Option func(*Options)

type Options struct {
	Observer Observer
}

func defaultOptions() Options { return Options{} }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// Cell owns one value of type T and arbitrates access to it through an
// atomic borrow counter: 0 means free, 1..MaxSharedBorrows counts shared
// borrows, Sentinel marks the single exclusive borrow.
//
// A Cell must not be copied after first use; outstanding guards reference
// its interior directly.
type Cell[T any] struct {
	_       noCopy
	borrows atomic.Uint32
	obs     Observer
	value   T
}

func New[T any](value T, optFns ...Option) *Cell[T] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Cell[T]{obs: opts.Observer, value: value}
}

// Borrow acquires a shared, read-only view of the cell's value. Callers
// must not mutate through the returned guard.
//
// If the cell is exclusively borrowed, or the shared ceiling has been
// reached, Borrow terminates the process.
func (c *Cell[T]) Borrow() *Ref[T] {
	if prev := c.borrows.Add(1) - 1; prev >= MaxSharedBorrows {
		c.contended(Shared)
		abort(msgSharedConflict)
	}
	if c.obs != nil {
		c.obs.Acquired(Shared)
	}
	return &Ref[T]{value: &c.value, borrows: &c.borrows, obs: c.obs}
}

// BorrowMut acquires the exclusive, read-write view of the cell's value.
//
// If any borrow is outstanding, shared or exclusive, BorrowMut terminates
// the process.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	if prev := c.borrows.Swap(Sentinel); prev != 0 {
		c.contended(Exclusive)
		abort(msgExclusiveConflict)
	}
	if c.obs != nil {
		c.obs.Acquired(Exclusive)
	}
	return &RefMut[T]{value: &c.value, borrows: &c.borrows, obs: c.obs}
}

// Free reports whether the cell had no outstanding borrows at the instant
// of the read. Advisory only: with concurrent borrowers the answer may be
// stale before Free returns, so it must never gate a Borrow or BorrowMut.
func (c *Cell[T]) Free() bool {
	return c.borrows.Load() == 0
}

func (c *Cell[T]) contended(mode Mode) {
	if c.obs != nil {
		c.obs.Contended(mode)
	}
}

// noCopy triggers go vet's copylocks check when a Cell is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
