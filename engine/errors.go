package engine

import "errors"

// ErrNotVisible reports a line outside the visible viewport window.
var ErrNotVisible = errors.New("line not visible")
