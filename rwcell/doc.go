// Package rwcell provides a lock-free interior-mutability cell for Go.
// A Cell owns one value and hands out temporary views of it: any number
// of shared (read-only) guards, or exactly one exclusive (read-write)
// guard, never both. Borrow bookkeeping is a single atomic counter, so a
// Cell can be used from many goroutines without a mutex and without
// blocking: an acquire either succeeds immediately or terminates the
// process, because a conflicting borrow is a caller bug, not a condition
// to wait out or recover from.
package rwcell
