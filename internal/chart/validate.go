package chart

import "fmt"

// Validate checks the structural consistency of a definition. Every
// check runs, nothing short-circuits, and the message order is stable:
// basic parameters, per-event checks in event order, per-cell checks in
// cell order, then the cross checks. The result is advisory, callers
// decide how severe a given message is.
func Validate(d *Definition) (bool, []string) {
	errs := []string{}

	if d.BPM <= 0 {
		errs = append(errs, fmt.Sprintf("bpm must be positive, got %v", d.BPM))
	}
	if d.Measures <= 0 {
		errs = append(errs, fmt.Sprintf("measures must be positive, got %v", d.Measures))
	}
	if d.BeatsPerMeasure <= 0 {
		errs = append(errs, fmt.Sprintf("beats per measure must be positive, got %v", d.BeatsPerMeasure))
	}

	inRange := func(measure, beat int) bool {
		return measure >= 0 && measure < d.Measures && beat >= 0 && beat < d.BeatsPerMeasure
	}

	for i := range d.Events {
		e := &d.Events[i]
		if !inRange(e.Measure, e.Beat) {
			errs = append(errs, fmt.Sprintf("event at measure %v beat %v is out of range", e.Measure, e.Beat))
		}
		if e.Type == Hold {
			if e.HoldEndBeat <= e.Beat {
				errs = append(errs, fmt.Sprintf("hold at measure %v beat %v must end after it starts", e.Measure, e.Beat))
			}
			if e.HoldEndBeat >= d.BeatsPerMeasure {
				errs = append(errs, fmt.Sprintf("hold at measure %v beat %v crosses the measure boundary", e.Measure, e.Beat))
			}
		}
	}

	for i := range d.Cells {
		c := &d.Cells[i]
		if !inRange(c.Measure, c.Beat) {
			errs = append(errs, fmt.Sprintf("cell at measure %v beat %v is out of range", c.Measure, c.Beat))
		}
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("cell at measure %v beat %v has no id", c.Measure, c.Beat))
		}
		if len(c.SubEvents) == 0 {
			errs = append(errs, fmt.Sprintf("cell at measure %v beat %v has no events", c.Measure, c.Beat))
		}
		for j := range c.SubEvents {
			e := &c.SubEvents[j]
			if !e.SamePos(c.Measure, c.Beat) {
				errs = append(errs, fmt.Sprintf("cell at measure %v beat %v has a misplaced event at measure %v beat %v", c.Measure, c.Beat, e.Measure, e.Beat))
			}
			if e.Type == Hold {
				if e.HoldEndBeat <= e.Beat {
					errs = append(errs, fmt.Sprintf("hold at measure %v beat %v must end after it starts", e.Measure, e.Beat))
				}
				if e.HoldEndBeat >= d.BeatsPerMeasure {
					errs = append(errs, fmt.Sprintf("hold at measure %v beat %v crosses the measure boundary", e.Measure, e.Beat))
				}
			}
		}
	}

	// One message per duplicated position, however many share it
	reported := map[[2]int]bool{}
	for i := range d.Events {
		e := &d.Events[i]
		pos := [2]int{e.Measure, e.Beat}
		if reported[pos] {
			continue
		}
		for j := i + 1; j < len(d.Events); j++ {
			if d.Events[j].SamePos(e.Measure, e.Beat) {
				errs = append(errs, fmt.Sprintf("duplicate events at measure %v beat %v", e.Measure, e.Beat))
				reported[pos] = true
				break
			}
		}
	}

	reported = map[[2]int]bool{}
	for i := range d.Cells {
		c := &d.Cells[i]
		pos := [2]int{c.Measure, c.Beat}
		if reported[pos] {
			continue
		}
		for j := i + 1; j < len(d.Cells); j++ {
			if d.Cells[j].SamePos(c.Measure, c.Beat) {
				errs = append(errs, fmt.Sprintf("duplicate cells at measure %v beat %v", c.Measure, c.Beat))
				reported[pos] = true
				break
			}
		}
	}

	for i := range d.Cells {
		c := &d.Cells[i]
		if nil != d.EventAt(c.Measure, c.Beat) {
			errs = append(errs, fmt.Sprintf("event and cell conflict at measure %v beat %v", c.Measure, c.Beat))
		}
	}

	return len(errs) == 0, errs
}
