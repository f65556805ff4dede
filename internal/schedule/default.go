package schedule

import (
	"fmt"
	"sort"
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
	"git.lost.host/meutraa/eotg/internal/timing"
)

type DefaultScheduler struct{}

func (s *DefaultScheduler) materialize(d *chart.Definition, e *chart.GridEvent,
	cell string, sectionStart, lead time.Duration) (*Note, *EventError) {
	elapsed, err := timing.Resolve(d, e.Measure, e.Beat)
	if nil != err {
		return nil, &EventError{Measure: e.Measure, Beat: e.Beat, Cell: cell, Err: err}
	}

	note := &Note{
		Time:      sectionStart + elapsed,
		SpawnTime: sectionStart + elapsed - lead,
		Event:     *e,
		Cell:      cell,
		State:     Waiting,
	}

	if e.Type == chart.Hold {
		end, err := timing.Resolve(d, e.Measure, e.HoldEndBeat)
		if nil != err {
			return nil, &EventError{Measure: e.Measure, Beat: e.Beat, Cell: cell,
				Err: fmt.Errorf("hold end beat %v: %w", e.HoldEndBeat, err)}
		}
		if end <= elapsed {
			return nil, &EventError{Measure: e.Measure, Beat: e.Beat, Cell: cell,
				Err: fmt.Errorf("hold end beat %v does not follow beat %v", e.HoldEndBeat, e.Beat)}
		}
		note.IsHold = true
		note.HoldEnd = sectionStart + end
		note.HoldDuration = end - elapsed
	}

	return note, nil
}

func (s *DefaultScheduler) Schedule(d *chart.Definition, sectionStart, lead time.Duration) ([]*Note, []EventError) {
	// A broken grid shape is a configuration defect, not a bad note
	if d.BPM <= 0 || d.Measures <= 0 || d.BeatsPerMeasure <= 0 {
		return nil, []EventError{{Err: fmt.Errorf(
			"refusing to schedule: bpm %v, measures %v, beats %v",
			d.BPM, d.Measures, d.BeatsPerMeasure)}}
	}

	notes := []*Note{}
	errs := []EventError{}

	for i := range d.Events {
		note, ee := s.materialize(d, &d.Events[i], "", sectionStart, lead)
		if nil != ee {
			errs = append(errs, *ee)
			continue
		}
		notes = append(notes, note)
	}

	for i := range d.Cells {
		c := &d.Cells[i]
		for j := range c.SubEvents {
			note, ee := s.materialize(d, &c.SubEvents[j], c.ID, sectionStart, lead)
			if nil != ee {
				errs = append(errs, *ee)
				continue
			}
			notes = append(notes, note)
		}
	}

	// Stable keeps authoring order on equal times: standalone events
	// first, then cells and their sub-events in insertion order
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})

	return notes, errs
}

func (s *DefaultScheduler) DispatchDue(notes []*Note, now time.Duration) []*Note {
	due := []*Note{}
	for _, n := range notes {
		if n.State != Waiting || n.Event.Type.IsJudged() {
			continue
		}
		if n.Time <= now {
			n.State = Hit
			due = append(due, n)
		}
	}
	return due
}
