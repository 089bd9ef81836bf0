// SPDX-License-Identifier: AGPL-3.0-only
package profile

import "fmt"

// DataLoadError means the initial profile could not be produced. The dashboard
// shows a placeholder instead of failing.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load profile from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// RenderError describes one malformed activity that was left out of the feed.
type RenderError struct {
	Index int
	ID    int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("activity #%d (id %d) skipped: %v", e.Index, e.ID, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
