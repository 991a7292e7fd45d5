package utils

import "fmt"

// RunAndWrapOnError runs the given function and wraps its error, if any,
// around an existing error. Useful for Close calls in error paths.
func RunAndWrapOnError(runFn func() error, existingErr error) error {
	if runErr := runFn(); runErr != nil {
		if existingErr == nil {
			return runErr
		}
		return fmt.Errorf(`failed to run because of %v with existing err %w`, runErr, existingErr)
	}
	return existingErr
}
