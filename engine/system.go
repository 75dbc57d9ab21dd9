package engine

import "time"

// System is a per-tick world processor
// Lower Priority values run first
type System interface {
	Update(dt time.Duration)
	Priority() int
	Name() string
}
