package domain

import "time"

// Status is the completion state of one day's puzzle.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in_progress"
	StatusNotStarted Status = "not_started"
)

// DeriveStatus maps archive flags onto a Status. A solved puzzle is done no
// matter what percent_filled says; the partial-fill check only applies to
// unsolved puzzles.
func DeriveStatus(solved bool, percentFilled float64) Status {
	if solved {
		return StatusDone
	}
	if percentFilled > 0 {
		return StatusInProgress
	}

	return StatusNotStarted
}

func (s Status) Label() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusInProgress:
		return "in progress"
	case StatusNotStarted:
		return "not started"
	default:
		return string(s)
	}
}

type PuzzleID int64

// Puzzle is one calendar day's puzzle state as reported by the archive.
type Puzzle struct {
	ID     PuzzleID
	Status Status
	// SolveTime is reserved; no current operation populates it.
	SolveTime *time.Duration
}
