package convert

import "errors"

// fatalError marks failures that make the rest of the batch pointless,
// such as an unusable output root. Per-file failures are plain errors.
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// Fatal wraps err so that IsFatal reports true for it.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// IsFatal reports whether err aborts the whole run.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}
