// Package trylocker presents exclusive borrowing of a cell through the
// sync.Locker interface, for APIs that accept one. It enables incremental
// adoption in code written against mutexes without changing the cell's
// semantics: Lock is an assertion that the cell is free, not a wait, and a
// contended Lock terminates the process exactly like rwcell.Cell.BorrowMut.
package trylocker

import "github.com/NetPo4ki/go-rwcell/rwcell"

// Locker adapts a cell's exclusive mode to sync.Locker. A Locker is meant
// to be held by one owner at a time; concurrent Lock attempts are borrow
// violations and fatal by design.
type Locker[T any] struct {
	cell  *rwcell.Cell[T]
	guard *rwcell.RefMut[T]
}

// Wrap builds a Locker over c.
func Wrap[T any](c *rwcell.Cell[T]) *Locker[T] {
	return &Locker[T]{cell: c}
}

// Lock acquires the exclusive borrow. It never blocks; if the cell is
// already borrowed the process terminates.
func (l *Locker[T]) Lock() {
	l.guard = l.cell.BorrowMut()
}

// Unlock releases the exclusive borrow. Unlocking an unlocked Locker
// panics, mirroring sync.Mutex.
func (l *Locker[T]) Unlock() {
	g := l.guard
	if g == nil {
		panic("trylocker: Unlock of unlocked Locker")
	}
	l.guard = nil
	g.Release()
}

// Value returns the mutable view. Valid only between Lock and Unlock.
func (l *Locker[T]) Value() *T {
	return l.guard.Value()
}

// Guarded runs fn with the exclusive view, releasing on the way out even
// if fn panics.
func (l *Locker[T]) Guarded(fn func(*T)) {
	g := l.cell.BorrowMut()
	defer g.Release()
	fn(g.Value())
}
