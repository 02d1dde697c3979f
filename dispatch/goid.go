package dispatch

import "runtime"

// goroutineID returns the numeric id of the calling goroutine, parsed
// from the runtime.Stack header ("goroutine 123 [running]:"). The id
// is only ever compared for equality against the id the loop goroutine
// recorded for itself; nothing else is derived from it.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Skip "goroutine " and accumulate digits up to the next space.
	var id uint64
	for _, c := range buf[10:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
