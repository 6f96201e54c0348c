package roadmap

import "errors"

var (
	// ErrRoadmapNotFound indicates the roadmap doesn't exist for the user.
	ErrRoadmapNotFound = errors.New("roadmap not found")
	// ErrInvalidInput indicates invalid input for roadmap operations.
	ErrInvalidInput = errors.New("invalid roadmap input")
)
