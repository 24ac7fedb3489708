package checkpoint

import (
	"github.com/zyedidia/generic/stack"
)

// Stack is the LIFO of saved snapshots. The bottom entry is never popped, so
// restoring always has something to go back to once a snapshot has been pushed.
type Stack struct {
	s *stack.Stack[*Snapshot]
}

// NewStack creates an empty checkpoint stack
func NewStack() *Stack {
	return &Stack{s: stack.New[*Snapshot]()}
}

// Push saves a copy of snap
func (c *Stack) Push(snap *Snapshot) {
	c.s.Push(snap.Clone())
}

// Latest returns the snapshot to restore: the top entry is popped unless it is
// the only one left, in which case it is only peeked. Returns nil when empty.
func (c *Stack) Latest() *Snapshot {
	switch c.s.Size() {
	case 0:
		return nil
	case 1:
		return c.s.Peek().Clone()
	default:
		return c.s.Pop()
	}
}

// Len returns the number of saved snapshots
func (c *Stack) Len() int {
	return c.s.Size()
}

// Reset discards every snapshot
func (c *Stack) Reset() {
	c.s = stack.New[*Snapshot]()
}
