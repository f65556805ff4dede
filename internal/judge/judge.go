// Package judge owns the note state machine and the matching policy
// between input timestamps and scheduled notes.
package judge

import (
	"time"

	"git.lost.host/meutraa/eotg/internal/schedule"
)

type Engine interface {
	// CanBeJudged reports whether input may still match this note.
	CanBeJudged(n *schedule.Note) bool

	// TryJudge matches an input timestamp against the closest waiting
	// judged note within the window, transitions it to Hit, and returns
	// it with the signed timing error. Nil when nothing is in reach.
	TryJudge(notes []*schedule.Note, inputTime, window time.Duration) (*schedule.Note, time.Duration)

	// SweepMissed flags waiting judged notes whose window has passed.
	// Safe to call every frame, a note is only ever returned once.
	SweepMissed(notes []*schedule.Note, now, window time.Duration) []*schedule.Note

	// EvaluateHoldRelease returns the signed error between the release
	// and the hold's end. What counts as a passed hold is the caller's
	// policy, not ours.
	EvaluateHoldRelease(n *schedule.Note, releaseTime time.Duration) (time.Duration, error)

	// Cleanup retires a hit or missed note. Waiting notes stay put.
	Cleanup(n *schedule.Note) bool

	// ResetAll returns every note to Waiting for a session restart.
	// This is the only way state ever goes backwards.
	ResetAll(notes []*schedule.Note)
}
