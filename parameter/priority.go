package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityEmitter = 10
	PriorityCull    = 20 // After emitter, before the frame is rendered
)
