package svg

import "errors"

// ErrDuplicateID is returned by AddPath when the document already holds a
// different path with the same id.
var ErrDuplicateID = errors.New("svg: duplicate path id")
