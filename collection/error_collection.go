package collection

import (
	"errors"
	"fmt"
	"sync"
)

// Error aggregates failures from concurrently running qualification workflows
type Error struct {
	sync.Mutex
	errs []error
}

func (e *Error) Add(err error) {
	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, err)
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

// Error returns nil when nothing was collected. The combined error unwraps to
// every collected error.
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errs) == 0 {
		return nil
	}

	return fmt.Errorf("encountered errors: \n %w", errors.Join(e.errs...))
}
