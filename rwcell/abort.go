package rwcell

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

const (
	msgSharedConflict    = "shared borrow attempted against an exclusively or maximally borrowed cell"
	msgExclusiveConflict = "exclusive borrow attempted against an already-borrowed cell"
	msgConsumedGuard     = "use of a guard whose release obligation was already discharged or transferred"
)

// Test seams. Production code always writes to stderr and hard-exits.
var (
	abortSink io.Writer = os.Stderr
	abortExit           = os.Exit
)

// abort reports a borrow-discipline violation and terminates the process.
// os.Exit runs no deferred functions and cannot be recovered, so no
// cleanup logic on any goroutine's stack can suppress the termination.
// The trailing panic fires only if a test stub for abortExit returns.
func abort(msg string) {
	buf := make([]byte, 1<<16)
	n := runtime.Stack(buf, true)
	fmt.Fprintf(abortSink, "rwcell: fatal: %s\n\n%s\n", msg, buf[:n])
	abortExit(2)
	panic("rwcell: abort exit hook returned")
}
