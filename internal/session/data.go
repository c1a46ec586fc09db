package session

import (
	"quiz-web/internal/quiz"
	"quiz-web/internal/randomplay"
)

// Data is everything kept per client session.
type Data struct {
	RandomPlay randomplay.State `json:"random_play"`
	Flash      []quiz.Notice    `json:"flash,omitempty"`
}

func (d *Data) AddFlash(notices ...quiz.Notice) {
	d.Flash = append(d.Flash, notices...)
}

// PopFlash returns the pending notices and clears them.
func (d *Data) PopFlash() []quiz.Notice {
	notices := d.Flash
	d.Flash = nil
	return notices
}

func (d Data) clone() Data {
	clone := Data{RandomPlay: d.RandomPlay.Clone()}
	if d.Flash != nil {
		clone.Flash = append([]quiz.Notice(nil), d.Flash...)
	}
	return clone
}
