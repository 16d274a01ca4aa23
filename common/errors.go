package common

import "errors"

// ErrNotImplemented is the deliberate terminal signal for command
// branches that are not built yet. Placeholder branches return it so
// that they fail visibly instead of silently succeeding.
var ErrNotImplemented = errors.New("not implemented")
