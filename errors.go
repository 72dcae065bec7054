package main

import "errors"

var (
	// ErrEmptyDrawing indicates the drawing holds no wall geometry with a usable extent.
	ErrEmptyDrawing = errors.New("drawing has no wall geometry")
	// ErrNoWalkGraph indicates a route was requested before any walk graph was built.
	ErrNoWalkGraph = errors.New("walk graph not built")
)
