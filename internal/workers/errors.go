package workers

import "errors"

var ErrTickPanicked = errors.New("reminder tick panicked")
