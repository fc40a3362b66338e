package movements

import "errors"

// ErrIndexOutOfRange is returned when a delete targets a list position that
// no longer exists, e.g. after a concurrent refetch shrank the list.
var ErrIndexOutOfRange = errors.New("movement index out of range")
