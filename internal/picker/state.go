package picker

import (
	"fmt"
	"image"

	"photopick/internal/progress"
)

// StateKind tags the ImageState variants.
type StateKind int

const (
	KindEmpty StateKind = iota
	KindLoading
	KindSuccess
	KindFailure
)

func (k StateKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ImageState is a closed union: Empty, Loading, Success or Failure.
// Switch over the concrete types; callers that hit an unknown variant should
// panic via UnknownState rather than fall through.
type ImageState interface {
	Kind() StateKind
	imageState()
}

// Empty means nothing is selected, or the selection decoded to no image.
type Empty struct{}

// Loading means a selection is being decoded.
type Loading struct {
	Progress *progress.Progress
}

// Success carries the decoded image.
type Success struct {
	Image image.Image
}

// Failure carries the decode error.
type Failure struct {
	Err error
}

func (Empty) Kind() StateKind   { return KindEmpty }
func (Loading) Kind() StateKind { return KindLoading }
func (Success) Kind() StateKind { return KindSuccess }
func (Failure) Kind() StateKind { return KindFailure }

func (Empty) imageState()   {}
func (Loading) imageState() {}
func (Success) imageState() {}
func (Failure) imageState() {}

// UnknownState panics; use it as the default arm of an ImageState switch.
func UnknownState(s ImageState) {
	panic(fmt.Sprintf("picker: unhandled image state %T", s))
}
