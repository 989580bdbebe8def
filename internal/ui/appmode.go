package ui

// AppMode is the top-level mode: looking at the current photo, or picking one.
type AppMode int

const (
	ModeViewer AppMode = iota
	ModePicking
)

func (m AppMode) String() string {
	switch m {
	case ModeViewer:
		return "Viewer"
	case ModePicking:
		return "Picking"
	default:
		return "Unknown"
	}
}
