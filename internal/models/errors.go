package models

import "fmt"

// FetchError reports a network or server-side failure while talking to the
// cube backend. It leaves any previously displayed cube untouched.
type FetchError struct {
	// Op names the failed operation ("upload", "cube-info", "slice inline 12").
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// VizError reports a failure inside scene composition or the render call.
// It is recoverable: the next recompute starts from a clean slate.
type VizError struct {
	// Stage names where the failure happened ("compose", "draw").
	Stage string
	Err   error
}

func (e *VizError) Error() string {
	return fmt.Sprintf("visualization %s: %v", e.Stage, e.Err)
}

func (e *VizError) Unwrap() error { return e.Err }
