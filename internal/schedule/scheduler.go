package schedule

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
)

// EventError is a single event the scheduler had to skip. One bad note
// never aborts the rest of the chart.
type EventError struct {
	Measure int
	Beat    int
	Cell    string // Owning cell id, empty for a standalone event
	Err     error
}

func (e EventError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("cell %v at measure %v beat %v: %v", e.Cell, e.Measure, e.Beat, e.Err)
	}
	return fmt.Sprintf("event at measure %v beat %v: %v", e.Measure, e.Beat, e.Err)
}

type Scheduler interface {
	// Schedule materializes every event of the chart into notes ordered
	// by hit time, offset by sectionStart, spawning lead early.
	Schedule(d *chart.Definition, sectionStart, lead time.Duration) ([]*Note, []EventError)

	// DispatchDue returns the sound and animation notes whose time has
	// come, marking each fired so it only ever comes back once.
	DispatchDue(notes []*Note, now time.Duration) []*Note
}
