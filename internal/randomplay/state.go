package randomplay

import "errors"

// ErrNoActiveSession is returned when an answer is checked with no shuffled
// sequence in progress, e.g. on a fresh client or after exhaustion.
var ErrNoActiveSession = errors.New("no active random-play session")

type Phase string

const (
	PhaseFresh      Phase = "fresh"
	PhaseInProgress Phase = "in_progress"
	PhaseExhausted  Phase = "exhausted"
)

// State is the per-session random-play record.
//
// A nil Score means unset. Score 0 doubles as "lost" and "start over": the
// next Next call reshuffles whenever Score is nil or 0.
type State struct {
	IDs      []int64 `json:"arrayIds,omitempty"`
	Position int     `json:"posicion"`
	Score    *int    `json:"score,omitempty"`
}

// Phase reports which transition the next Next call takes.
func (s State) Phase() Phase {
	if s.Score == nil || *s.Score == 0 {
		return PhaseFresh
	}
	if s.Position+1 < len(s.IDs) {
		return PhaseInProgress
	}
	return PhaseExhausted
}

// Active reports whether answers can be checked against this state.
func (s State) Active() bool {
	return len(s.IDs) > 0 && s.Score != nil
}

// CurrentScore returns the score, or 0 when unset.
func (s State) CurrentScore() int {
	if s.Score == nil {
		return 0
	}
	return *s.Score
}

func (s *State) setScore(score int) {
	s.Score = &score
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	clone := State{Position: s.Position}
	if s.IDs != nil {
		clone.IDs = append([]int64(nil), s.IDs...)
	}
	if s.Score != nil {
		score := *s.Score
		clone.Score = &score
	}
	return clone
}
