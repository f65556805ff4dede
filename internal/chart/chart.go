package chart

import "fmt"

// Definition is the authored chart: a uniform bpm, a measure grid, and
// the events placed on it. Authoring operations mutate it; the timing,
// scheduling and judgement packages only ever read it.
type Definition struct {
	Title           string
	BPM             int
	Measures        int
	BeatsPerMeasure int
	Events          []GridEvent
	Cells           []Cell
}

func (d *Definition) EventAt(measure, beat int) *GridEvent {
	for i := range d.Events {
		if d.Events[i].SamePos(measure, beat) {
			return &d.Events[i]
		}
	}
	return nil
}

func (d *Definition) CellAt(measure, beat int) *Cell {
	for i := range d.Cells {
		if d.Cells[i].SamePos(measure, beat) {
			return &d.Cells[i]
		}
	}
	return nil
}

// AddEvent places a single event, refusing positions already taken by
// another event or a cell.
func (d *Definition) AddEvent(e GridEvent) error {
	if nil != d.EventAt(e.Measure, e.Beat) {
		return fmt.Errorf("event already at measure %v beat %v", e.Measure, e.Beat)
	}
	if nil != d.CellAt(e.Measure, e.Beat) {
		return fmt.Errorf("cell already at measure %v beat %v", e.Measure, e.Beat)
	}
	d.Events = append(d.Events, e)
	return nil
}

func (d *Definition) RemoveEvent(measure, beat int) bool {
	for i := range d.Events {
		if d.Events[i].SamePos(measure, beat) {
			d.Events = append(d.Events[:i], d.Events[i+1:]...)
			return true
		}
	}
	return false
}

// AddCell places a composite cell, aligning its sub-events onto the
// cell's position.
func (d *Definition) AddCell(c Cell) error {
	if nil != d.CellAt(c.Measure, c.Beat) {
		return fmt.Errorf("cell already at measure %v beat %v", c.Measure, c.Beat)
	}
	if nil != d.EventAt(c.Measure, c.Beat) {
		return fmt.Errorf("event already at measure %v beat %v", c.Measure, c.Beat)
	}
	c.Align()
	d.Cells = append(d.Cells, c)
	return nil
}

func (d *Definition) RemoveCell(measure, beat int) bool {
	for i := range d.Cells {
		if d.Cells[i].SamePos(measure, beat) {
			d.Cells = append(d.Cells[:i], d.Cells[i+1:]...)
			return true
		}
	}
	return false
}

// Resize changes the measure count, dropping events and cells that fall
// outside the new range.
func (d *Definition) Resize(measures int) {
	d.Measures = measures
	events := d.Events[:0]
	for _, e := range d.Events {
		if e.Measure < measures {
			events = append(events, e)
		}
	}
	d.Events = events
	cells := d.Cells[:0]
	for _, c := range d.Cells {
		if c.Measure < measures {
			cells = append(cells, c)
		}
	}
	d.Cells = cells
}

// Snapshot deep-copies the definition so a scheduling read never shares
// slices with later authoring edits.
func (d *Definition) Snapshot() *Definition {
	s := *d
	s.Events = make([]GridEvent, len(d.Events))
	copy(s.Events, d.Events)
	s.Cells = make([]Cell, len(d.Cells))
	for i, c := range d.Cells {
		cc := c
		cc.SubEvents = make([]GridEvent, len(c.SubEvents))
		copy(cc.SubEvents, c.SubEvents)
		s.Cells[i] = cc
	}
	return &s
}
