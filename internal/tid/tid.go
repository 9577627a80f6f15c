// Package tid reports the identifier of the calling OS thread.
//
// A thread id is only meaningful while the calling goroutine is wired to its
// thread with runtime.LockOSThread; otherwise the scheduler may move the
// goroutine to another thread right after the call returns.
package tid

import "errors"

// ErrUnsupported is returned by Current on platforms without a thread id
// source.
var ErrUnsupported = errors.New("tid: thread ids are not supported on this platform")
