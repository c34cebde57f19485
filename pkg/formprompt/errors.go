package formprompt

import "errors"

// ErrAborted signals the user aborted input, e.g. with Ctrl+C.
var ErrAborted = errors.New("formprompt: aborted")
