package testdata

import "git.lost.host/meutraa/eotg/internal/chart"

// Doc is a chart document as it would sit on disk.
const Doc = `title: fixture
bpm: 120
measures: 4
beats: 4
events:
  - { measure: 0, beat: 0, type: hold, end: 2 }
  - { measure: 1, beat: 2, type: tap }
  - { measure: 2, beat: 0, type: heavy }
  - { measure: 2, beat: 2, type: sound, pack: drums, sound: heavy }
cells:
  - measure: 3
    beat: 1
    id: finale
    events:
      - { type: tap }
      - { type: animation, target: crowd, trigger: cheer }
`

// GetChart builds the same chart Doc describes, without the parser.
func GetChart() *chart.Definition {
	return &chart.Definition{
		Title:           "fixture",
		BPM:             120,
		Measures:        4,
		BeatsPerMeasure: 4,
		Events: []chart.GridEvent{
			{Measure: 0, Beat: 0, Type: chart.Hold, HoldEndBeat: 2},
			{Measure: 1, Beat: 2, Type: chart.Tap},
			{Measure: 2, Beat: 0, Type: chart.Heavy},
			{Measure: 2, Beat: 2, Type: chart.SoundEffect, SoundPackID: "drums", SoundType: chart.Heavy},
		},
		Cells: []chart.Cell{
			{
				Measure: 3, Beat: 1, ID: "finale",
				SubEvents: []chart.GridEvent{
					{Measure: 3, Beat: 1, Type: chart.Tap},
					{Measure: 3, Beat: 1, Type: chart.Animation, TargetObjectID: "crowd", AnimationTrigger: "cheer"},
				},
			},
		},
	}
}
