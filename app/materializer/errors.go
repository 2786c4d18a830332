package materializer

import "fmt"

// WriteError reports the step and file that failed. Files written by earlier
// steps are left in place.
type WriteError struct {
	Step Step
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Step, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
