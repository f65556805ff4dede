package score

import (
	"time"

	"git.lost.host/meutraa/eotg/internal/schedule"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the outcome of a finished session
	Save(sum string, lead, window time.Duration, results []Result)

	// Load every previous session for the chart
	Load(sum string) []History
}

// Result is one note's final outcome, enough to rebuild the session
// statistics without the chart itself.
type Result struct {
	Measure int
	Beat    int
	Cell    string
	State   schedule.NoteState
	Error   time.Duration // Signed timing error, zero unless hit
}

type History struct {
	Sum     string
	Lead    time.Duration
	Window  time.Duration
	Results []Result
}

// Hits returns the hit count and the mean absolute error of a session.
func (h *History) Hits() (int, time.Duration) {
	hits := 0
	total := time.Duration(0)
	for _, r := range h.Results {
		if r.State != schedule.Hit {
			continue
		}
		hits++
		if r.Error < 0 {
			total -= r.Error
		} else {
			total += r.Error
		}
	}
	if hits == 0 {
		return 0, 0
	}
	return hits, total / time.Duration(hits)
}
