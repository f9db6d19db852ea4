// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts wall-clock time. Budget windows, recommendation lookbacks
// and report defaults all derive from "now", so every use case that depends
// on the current date receives a Clock instead of calling time.Now directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
