package schedule

import (
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
)

// NoteState walks a linear machine: Waiting to Hit or Missed, then
// Cleanup. Nothing leaves Hit, Missed or Cleanup except a session reset.
type NoteState uint8

const (
	Waiting NoteState = iota
	Hit
	Missed
	Cleanup
)

var stateNames = map[NoteState]string{
	Waiting: "waiting",
	Hit:     "hit",
	Missed:  "missed",
	Cleanup: "cleanup",
}

func (s NoteState) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// CanTransition reports whether the machine allows from -> to.
func CanTransition(from, to NoteState) bool {
	switch from {
	case Waiting:
		return to == Hit || to == Missed
	case Hit, Missed:
		return to == Cleanup
	}
	return false
}

// Note is one materialized instance of a grid event with its times
// resolved. The time fields never change after scheduling; only State
// does, and only through the judge package transitions (or DispatchDue
// for sound and animation notes).
type Note struct {
	Time      time.Duration // When the note should be hit, or fired
	SpawnTime time.Duration // Time minus the lead interval

	Event chart.GridEvent
	Cell  string // Owning cell id, empty for a standalone event

	IsHold       bool
	HoldEnd      time.Duration
	HoldDuration time.Duration

	State NoteState
}
