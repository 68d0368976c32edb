package profile

// State is the lifecycle position of a mounted profile view.
type State int

const (
	Hydrating State = iota
	Viewing
	Editing
	Saving
	SaveFailed
)

func (s State) String() string {
	switch s {
	case Hydrating:
		return "hydrating"
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	case SaveFailed:
		return "save-failed"
	default:
		return "unknown"
	}
}

// editable reports whether the draft accepts field edits and image picks.
func (s State) editable() bool {
	return s == Editing || s == SaveFailed
}
