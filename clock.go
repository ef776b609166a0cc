package tilequest

import "time"

var started = time.Now()

// Now returns the milliseconds elapsed since the game package was loaded.
func Now() int64 {
	return time.Since(started).Milliseconds()
}
