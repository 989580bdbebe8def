package picker

import (
	"context"
	"image"

	"photopick/internal/progress"
)

// Selection identifies one picked library item. Two selections are the same
// item when they compare equal with ==.
type Selection struct {
	ID   string
	Path string
	Name string
}

// Short returns a truncated ID for logs and status lines.
func (s Selection) Short() string {
	if len(s.ID) > 12 {
		return s.ID[:12]
	}
	return s.ID
}

// Result is the tri-state outcome of a load: Image set, Err set, or neither
// (the payload held no displayable image).
type Result struct {
	Image image.Image
	Err   error
}

// Loader decodes a selection off the caller's goroutine. Load returns at once
// and calls done exactly once, from any goroutine.
type Loader interface {
	Load(ctx context.Context, sel Selection, done func(Result)) *progress.Progress
}
