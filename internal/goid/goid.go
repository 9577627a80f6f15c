// Package goid reports the identifier of the calling goroutine.
package goid

import (
	"runtime"
	"strconv"
	"sync"
)

const prefix = "goroutine "

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 64)
		return &b
	},
}

// Current returns the runtime's id of the calling goroutine.
//
// The id is parsed from the header line of runtime.Stack
// ("goroutine 18 [running]:"), which only needs a few bytes of buffer.
// Current panics if the header cannot be parsed.
func Current() uint64 {
	bp := bufPool.Get().(*[]byte)
	defer bufPool.Put(bp)

	b := *bp
	n := runtime.Stack(b, false)

	id, ok := parse(b[:n])
	if !ok {
		panic("goid: unexpected stack header " + strconv.Quote(string(b[:n])))
	}
	return id
}

func parse(b []byte) (uint64, bool) {
	if len(b) < len(prefix) || string(b[:len(prefix)]) != prefix {
		return 0, false
	}
	b = b[len(prefix):]

	var id uint64
	i := 0
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		id = id*10 + uint64(b[i]-'0')
	}
	if i == 0 {
		return 0, false
	}
	return id, true
}
