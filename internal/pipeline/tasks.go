package pipeline

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/andreyflyagin/wordcounter/internal/wcerrors"
)

// runTasks runs task(0) .. task(n-1) in parallel and returns once every one
// of them has finished. A task that panics is reported as ErrTask instead of
// taking the process down. The first failure is returned.
func runTasks(phase string, n int, task func(i int) error) error {
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %s task %d: %v", wcerrors.ErrTask, phase, i, r)
				}
			}()
			if err := task(i); err != nil {
				return fmt.Errorf("%w: %s task %d: %w", wcerrors.ErrTask, phase, i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
