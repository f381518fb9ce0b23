package geom

import (
	"errors"
	"fmt"
)

// ErrBadPathData is wrapped by every error returned from ParsePathData.
var ErrBadPathData = errors.New("geom: bad path data")

// PathDataError reports where SVG path data could not be parsed.
type PathDataError struct {
	Offset int
	Reason string
}

func (e *PathDataError) Error() string {
	return fmt.Sprintf("geom: bad path data at offset %d: %s", e.Offset, e.Reason)
}

func (e *PathDataError) Unwrap() error {
	return ErrBadPathData
}
