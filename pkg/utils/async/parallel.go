package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Task is a unit of work executed by Parallel.
type Task struct {
	// Name identifies the task in errors and logs
	Name string
	// Run performs the work
	Run func(ctx context.Context) error
}

// Parallel executes all tasks concurrently and waits for every one of them,
// even when some fail. Panics are recovered and reported as errors. The
// returned slice holds one entry per task, in order; nil means success.
//
// Each task receives the original context, so cancellation still applies,
// and the ctxlog logger is annotated with the task name.
func Parallel(ctx context.Context, tasks []Task) []error {
	results := make([]error, len(tasks))

	var eg errgroup.Group
	for i, task := range tasks {
		eg.Go(func() error {
			taskCtx := ctxlog.With(ctx, ctxlog.From(ctx).With("task", task.Name))

			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(taskCtx).Error("panic in parallel task",
						"recover", r,
						"stack", string(stack),
					)
					results[i] = goerr.New("panic in parallel task",
						goerr.V("task", task.Name),
						goerr.V("recover", r),
					)
				}
			}()

			if err := task.Run(taskCtx); err != nil {
				ctxlog.From(taskCtx).Error("parallel task failed", "error", err)
				results[i] = err
			}

			// Failures are reported through results so the remaining
			// tasks keep running.
			return nil
		})
	}

	_ = eg.Wait()

	return results
}
