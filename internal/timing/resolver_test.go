package timing

import (
	"testing"
	"time"

	"git.lost.host/meutraa/eotg/internal/chart"
	"git.lost.host/meutraa/eotg/internal/testdata"
)

type position struct {
	Measure, Beat int
}

// 120 bpm, 4 beats: beat is 500ms, measure is 2s
var resolveTests = map[position]time.Duration{
	{0, 0}: 0,
	{0, 1}: 500 * time.Millisecond,
	{0, 2}: time.Second,
	{1, 0}: 2 * time.Second,
	{1, 2}: 3 * time.Second,
	{3, 3}: 7500 * time.Millisecond,
}

func TestResolve(t *testing.T) {
	d := testdata.GetChart()
	for pos, expected := range resolveTests {
		out, err := Resolve(d, pos.Measure, pos.Beat)
		if nil != err {
			t.Log("position", pos, "error", err)
			t.Fail()
			continue
		}
		if out != expected {
			t.Log("position", pos)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
		// A second call must return the identical value
		again, _ := Resolve(d, pos.Measure, pos.Beat)
		if again != out {
			t.Log("position", pos, "not deterministic:", out, again)
			t.Fail()
		}
	}
}

func TestResolveMonotonic(t *testing.T) {
	d := testdata.GetChart()
	last := time.Duration(-1)
	for measure := 0; measure < d.Measures; measure++ {
		for beat := 0; beat < d.BeatsPerMeasure; beat++ {
			out, err := Resolve(d, measure, beat)
			if nil != err {
				t.Fatal(err)
			}
			if out <= last && !(measure == 0 && beat == 0) {
				t.Log("resolve decreased at measure", measure, "beat", beat)
				t.Fail()
			}
			last = out
		}
	}
}

var outOfRangeTests = []position{
	{-1, 0},
	{0, -1},
	{4, 0},
	{0, 4},
	{100, 100},
}

func TestResolveOutOfRange(t *testing.T) {
	d := testdata.GetChart()
	for _, pos := range outOfRangeTests {
		if _, err := Resolve(d, pos.Measure, pos.Beat); nil == err {
			t.Log("expected error for position", pos)
			t.Fail()
		}
	}
}

func TestResolveBadShape(t *testing.T) {
	for _, d := range []*chart.Definition{
		{BPM: 0, Measures: 4, BeatsPerMeasure: 4},
		{BPM: 120, Measures: 0, BeatsPerMeasure: 4},
		{BPM: 120, Measures: 4, BeatsPerMeasure: 0},
	} {
		if _, err := Resolve(d, 0, 0); nil == err {
			t.Log("expected error for shape", d.BPM, d.Measures, d.BeatsPerMeasure)
			t.Fail()
		}
	}
}
