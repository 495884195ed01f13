package loop

import "sync"

// Action is a player request queued by an input adapter.
type Action uint8

const (
	ActionMoveLeft Action = iota + 1
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionRotate:
		return "rotate"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Commands buffers player actions until the next frame applies them.
// Push is safe to call from any goroutine, such as a terminal event poller.
type Commands struct {
	mu      sync.Mutex
	pending []Action
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Push queues an action.
func (c *Commands) Push(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = append(c.pending, a)
}

// Drain appends every queued action to dst in arrival order, empties the
// buffer and returns the extended slice.
func (c *Commands) Drain(dst []Action) []Action {
	c.mu.Lock()
	defer c.mu.Unlock()

	dst = append(dst, c.pending...)
	c.pending = c.pending[:0]
	return dst
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}
