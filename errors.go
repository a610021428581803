package stfl

import (
	"fmt"
	"os"
)

// fatalf aborts the process with a diagnostic for the two programmer
// errors that can't be expressed as a default or sentinel value: a
// missing root at step time, and a terminal allocation failure. It
// writes a clear message to stderr before panicking, rather than
// returning a half-built Form.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "stfl: fatal: %s\n", fmt.Sprintf(format, args...))
	panic(fmt.Sprintf(format, args...))
}
