package domain

import "errors"

// RootCause walks err's unwrap chain and returns the innermost error. Used to
// surface the underlying failure of a wrapped resolution error in user-facing
// messages.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
