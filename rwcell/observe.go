package rwcell

// Mode distinguishes the two borrow kinds in observer callbacks.
type Mode int

const (
	Shared Mode = iota
	Exclusive
)

func (m Mode) String() string {
	switch m {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Observer receives borrow lifecycle events from a cell. Implementations
// must be safe for concurrent use and should be cheap: callbacks run
// inline on the acquire and release paths.
//
// Contended fires on the abort path, immediately before the process
// terminates; only synchronous sinks are guaranteed to see it.
type Observer interface {
	Acquired(mode Mode)
	Released(mode Mode)
	Contended(mode Mode)
}
