// Package timing converts grid positions into elapsed time from the
// chart start. It is the single place the bpm arithmetic lives.
package timing

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
)

// Resolve returns the elapsed time of a grid position. Positions outside
// the declared grid are a caller bug (the chart was not validated) and
// come back as errors, never clamped.
func Resolve(d *chart.Definition, measure, beat int) (time.Duration, error) {
	if d.BPM <= 0 || d.BeatsPerMeasure <= 0 || d.Measures <= 0 {
		return 0, fmt.Errorf("chart shape is invalid: bpm %v, measures %v, beats %v",
			d.BPM, d.Measures, d.BeatsPerMeasure)
	}
	if measure < 0 || measure >= d.Measures || beat < 0 || beat >= d.BeatsPerMeasure {
		return 0, fmt.Errorf("measure %v beat %v is outside the %vx%v grid",
			measure, beat, d.Measures, d.BeatsPerMeasure)
	}

	beatDuration := 60.0 / float64(d.BPM)
	measureDuration := beatDuration * float64(d.BeatsPerMeasure)
	seconds := float64(measure)*measureDuration + float64(beat)*beatDuration
	return time.Duration(math.Round(seconds * float64(time.Second))), nil
}
