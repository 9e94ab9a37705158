package entities

// Mark is the per-letter verdict of a scored guess
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Rank orders marks for keyboard-hint merging: once a letter has been seen
// as correct it never downgrades to present or absent.
func (m Mark) Rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	default:
		return 0
	}
}
