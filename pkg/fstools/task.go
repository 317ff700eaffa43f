package fstools

import "context"

// Task is the pending result of an asynchronous operation.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// start runs fn on a new goroutine. A context that is already done settles
// the task with ctx.Err() without calling fn; once fn is running it is never
// interrupted.
func start[T any](ctx context.Context, fn func() (T, error)) *Task[T] {
	if err := ctx.Err(); err != nil {
		return settled[T](err)
	}

	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.val, t.err = fn()
	}()
	return t
}

// settled returns a task that has already failed with err.
func settled[T any](err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Done is closed once the task has settled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task settles and returns its result.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// Err blocks until the task settles and returns only its error.
func (t *Task[T]) Err() error {
	<-t.done
	return t.err
}
