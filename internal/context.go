package internal

// ExecutionContext is the scheduling environment task bodies run inside.
// While the owning scheduler is running a batch, Schedule captures callbacks
// into the deferred queue so they execute before the batching loop advances;
// outside a tick, callbacks pass through to the host queue unchanged.
type ExecutionContext struct {
	// true strictly while the owning scheduler runs its batching loop
	running bool

	queue *TaskQueue

	// the host's default "run this soon" queue
	post func(func())
}

func NewExecutionContext(post func(func())) *ExecutionContext {
	if post == nil {
		post = func(fn func()) { fn() }
	}

	return &ExecutionContext{
		queue: NewTaskQueue(),
		post:  post,
	}
}

// Schedule runs fn soon: deferred within the current tick if one is active,
// otherwise via the host queue.
func (ctx *ExecutionContext) Schedule(fn func()) {
	if ctx.running {
		ctx.queue.Enqueue(fn)
		return
	}

	ctx.post(fn)
}

// Run makes ctx the calling goroutine's active context for the duration of
// fn, so package-level Schedule calls inside fn route through it.
func (ctx *ExecutionContext) Run(fn func()) {
	prev := setActiveContext(ctx)
	defer setActiveContext(prev)

	fn()
}

// Schedule routes fn through the calling goroutine's active execution
// context. With no active context, fn runs immediately.
func Schedule(fn func()) {
	if ctx := activeContext(); ctx != nil {
		ctx.Schedule(fn)
		return
	}

	fn()
}
