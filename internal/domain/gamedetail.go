package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// GameDetail carries the per-game stats payload. Both blobs are passed
// through verbatim; the service owns their schema, not this client.
type GameDetail struct {
	Calcs  json.RawMessage
	Firsts json.RawMessage // nil when the response omits firsts
}

func (g GameDetail) HasFirsts() bool {
	return g.Firsts != nil
}

// SolveView is the small typed slice of a GameDetail the CLI knows how to
// read. Fields the blobs don't carry stay nil; decoding is tolerant and
// never fails, since the blobs are opaque by contract.
type SolveView struct {
	Attempted     bool
	CleanlySolved bool
	SolveSeconds  *int64
	SolvedAt      *time.Time
}

type calcsFields struct {
	SecondsSpentSolving *int64 `json:"secondsSpentSolving"`
}

type firstsFields struct {
	Solved  *int64 `json:"solved"`
	Checked *int64 `json:"checked"`
}

// SolveView extracts what it can from the opaque blobs.
func (g GameDetail) SolveView() SolveView {
	view := SolveView{Attempted: g.HasFirsts()}

	var calcs calcsFields
	if g.Calcs != nil && json.Unmarshal(g.Calcs, &calcs) == nil {
		view.SolveSeconds = calcs.SecondsSpentSolving
	}

	var firsts firstsFields
	if g.Firsts != nil && json.Unmarshal(g.Firsts, &firsts) == nil {
		if firsts.Solved != nil {
			solvedAt := time.Unix(*firsts.Solved, 0).UTC()
			view.SolvedAt = &solvedAt
			view.CleanlySolved = firsts.Checked == nil
		}
	}

	return view
}

// FormatSeconds renders a solve duration as m:ss.
func FormatSeconds(seconds int64) string {
	minutes := seconds / 60
	rest := seconds % 60

	return fmt.Sprintf("%d:%02d", minutes, rest)
}
