package internal

import "math"

// DefaultPriority sorts an untagged write after every depth-tagged write.
const DefaultPriority = math.MaxInt32

// WriteGroup is a single priority bucket of write work within a frame.
type WriteGroup struct {
	priority int

	// nil until a write is requested at this priority; cleared after the
	// group resolves so the priority can be requested again within the tick
	completion *Handle
}

// Frame is one display cycle's unit of work: write groups ordered by
// priority, one read slot, one after slot.
type Frame struct {
	ctx  *ExecutionContext
	trap func(any)

	// priority → group; a map so sparse priorities cost one entry each
	groups map[int]*WriteGroup

	// priorities of groups with a live, unresolved completion
	pending *PriorityHeap

	readCompletion  *Handle
	afterCompletion *Handle
}

func newFrame(ctx *ExecutionContext, trap func(any)) *Frame {
	return &Frame{
		ctx:     ctx,
		trap:    trap,
		groups:  make(map[int]*WriteGroup),
		pending: NewPriorityHeap(),
	}
}

// Write returns the completion handle for write work at the given priority,
// semantically the depth of the mutated node in the tree. Lower priorities
// resolve first. Repeated calls before the priority resolves fan in to the
// same handle.
func (f *Frame) Write(priority int) *Handle {
	if priority < 0 {
		panic("scheduler: negative write priority")
	}

	group := f.groups[priority]
	if group == nil {
		group = &WriteGroup{priority: priority}
		f.groups[priority] = group
	}

	if group.completion == nil {
		group.completion = newHandle(f.ctx, f.trap)
		f.pending.Push(priority)
	}

	return group.completion
}

// Read returns the frame's read handle, resolved once every pending write for
// the frame has resolved. Idempotent per frame.
func (f *Frame) Read() *Handle {
	if f.readCompletion == nil {
		f.readCompletion = newHandle(f.ctx, f.trap)
	}

	return f.readCompletion
}

// After returns the frame's after handle, resolved once writes and reads have
// converged to empty. Idempotent per frame.
func (f *Frame) After() *Handle {
	if f.afterCompletion == nil {
		f.afterCompletion = newHandle(f.ctx, f.trap)
	}

	return f.afterCompletion
}
