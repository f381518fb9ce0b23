package scene

import "errors"

var (
	// ErrUnknownFormat is returned for scene files whose extension is
	// neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scene: unknown file format")

	// ErrInvalidScene is returned when a scene fails validation.
	ErrInvalidScene = errors.New("scene: invalid scene")
)
