package parameter

import "time"

// Input binding
const (
	// KeyReleaseTimeout synthesizes a release when a terminal key stops repeating
	// Terminals report no key-up; auto-repeat typically fires every 30-50ms after a ~250-500ms delay
	KeyReleaseTimeout = 550 * time.Millisecond
)
