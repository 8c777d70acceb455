package rwcell

import "sync/atomic"

// Ref is a shared borrow of a cell's value. It carries one release
// obligation: Release must be called exactly once, unless the guard is
// consumed first by MapRef or Detach, which transfer the obligation to
// the guard they return.
type Ref[T any] struct {
	value    *T
	borrows  *atomic.Uint32
	obs      Observer
	consumed bool
}

// Value returns the borrowed view. The pointed-to value must be treated
// as read-only for the lifetime of the guard.
func (g *Ref[T]) Value() *T {
	if g.consumed {
		abort(msgConsumedGuard)
	}
	return g.value
}

func (g *Ref[T]) Get() T {
	return *g.Value()
}

// Release discharges the guard's obligation, decrementing the borrow
// counter by one. The guard is consumed; releasing it again terminates
// the process.
func (g *Ref[T]) Release() {
	_, borrows, obs := g.intoParts()
	borrows.Add(^uint32(0))
	if obs != nil {
		obs.Released(Shared)
	}
}

// Detach consumes the guard and returns an equivalent one that is meant
// to be stored or moved beyond the scope that acquired it.
//
// The caller takes over the contract the scope was upholding: the Cell
// must not be copied or otherwise relocated while the detached guard is
// outstanding, and the guard must still be released exactly once.
func (g *Ref[T]) Detach() *Ref[T] {
	value, borrows, obs := g.intoParts()
	return &Ref[T]{value: value, borrows: borrows, obs: obs}
}

// intoParts consumes the guard without discharging its obligation,
// handing the interior pointer and counter back-reference to the caller
// for reassembly into a successor guard.
func (g *Ref[T]) intoParts() (*T, *atomic.Uint32, Observer) {
	if g.consumed {
		abort(msgConsumedGuard)
	}
	g.consumed = true
	return g.value, g.borrows, g.obs
}

// RefMut is the exclusive borrow of a cell's value. Like Ref it carries
// exactly one release obligation, but its view is mutable and its release
// resets the counter to free rather than decrementing it.
type RefMut[T any] struct {
	value    *T
	borrows  *atomic.Uint32
	obs      Observer
	consumed bool
}

// Value returns the borrowed view. The caller may read and mutate the
// pointed-to value for the lifetime of the guard.
func (g *RefMut[T]) Value() *T {
	if g.consumed {
		abort(msgConsumedGuard)
	}
	return g.value
}

func (g *RefMut[T]) Get() T {
	return *g.Value()
}

func (g *RefMut[T]) Set(value T) {
	*g.Value() = value
}

// Release discharges the guard's obligation, returning the cell to the
// free state. The guard is consumed; releasing it again terminates the
// process.
func (g *RefMut[T]) Release() {
	_, borrows, obs := g.intoParts()
	borrows.Store(0)
	if obs != nil {
		obs.Released(Exclusive)
	}
}

// Detach consumes the guard and returns an equivalent one that is meant
// to be stored or moved beyond the scope that acquired it. See
// Ref.Detach for the contract the caller assumes.
func (g *RefMut[T]) Detach() *RefMut[T] {
	value, borrows, obs := g.intoParts()
	return &RefMut[T]{value: value, borrows: borrows, obs: obs}
}

func (g *RefMut[T]) intoParts() (*T, *atomic.Uint32, Observer) {
	if g.consumed {
		abort(msgConsumedGuard)
	}
	g.consumed = true
	return g.value, g.borrows, g.obs
}

// MapRef narrows a shared guard to a sub-view, typically a field of the
// borrowed value. The original guard is consumed without touching the
// counter; its release obligation moves to the returned guard unchanged.
// project must be pure and must return a pointer into memory owned by
// the borrowed value.
func MapRef[T, U any](g *Ref[T], project func(*T) *U) *Ref[U] {
	value, borrows, obs := g.intoParts()
	return &Ref[U]{value: project(value), borrows: borrows, obs: obs}
}

// MapRefMut narrows an exclusive guard to a sub-view. Same transfer
// semantics as MapRef.
func MapRefMut[T, U any](g *RefMut[T], project func(*T) *U) *RefMut[U] {
	value, borrows, obs := g.intoParts()
	return &RefMut[U]{value: project(value), borrows: borrows, obs: obs}
}
