package stfl

import "sync/atomic"

// globalID is the process-wide monotonic id counter. It is shared
// between widgets and kv entries — both are drawn from the same
// sequence — so ids stay unique across every live widget and every
// live kv entry within one process without a second counter to keep
// in sync.
var globalID int64

// nextID atomically hands out the next process-unique positive id.
func nextID() int64 {
	return atomic.AddInt64(&globalID, 1)
}
