package walk

import "fmt"

// NotFound is the sentinel returned by Find and FindVertex when the needle
// does not occur in the path.
const NotFound = -1

// invariant panics if cond is false. Every call site is a precondition a
// caller is expected to have already checked (mismatched endpoints on
// append, overlong cuts, uniqueness lost mid-extension); violating one is a
// caller bug, not a recoverable runtime condition, so it panics rather than
// returning an error.
func invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Errorf("walk: "+format, args...))
	}
}
