package internal

// TaskQueue holds continuation work captured while the scheduler is running a
// batch, so it executes inside the current tick instead of leaking to the
// host's ambient queue.
type TaskQueue struct {
	tasks []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		tasks: make([]func(), 0),
	}
}

func (q *TaskQueue) Enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Drain runs each task in FIFO order with the `run` function until the queue
// is empty, including tasks enqueued by tasks during the same drain.
func (q *TaskQueue) Drain(run func(func())) {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]

		run(fn)
	}
}
