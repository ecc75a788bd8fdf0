package session

import "errors"

// ErrCancelled is returned when input ends before the session reaches Exited.
var ErrCancelled = errors.New("session: input cancelled")
