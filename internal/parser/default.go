package parser

import (
	"fmt"
	"io/ioutil"

	"git.lost.host/meutraa/eotg/internal/chart"
	"gopkg.in/yaml.v3"
)

type DefaultParser struct{}

// The document shape of a .yaml chart file. Sub-events inside a cell
// may omit measure/beat, they are forced onto the cell's position.
type chartDoc struct {
	Title    string     `yaml:"title"`
	BPM      int        `yaml:"bpm"`
	Measures int        `yaml:"measures"`
	Beats    int        `yaml:"beats"`
	Events   []eventDoc `yaml:"events"`
	Cells    []cellDoc  `yaml:"cells"`
}

type eventDoc struct {
	Measure int               `yaml:"measure"`
	Beat    int               `yaml:"beat"`
	Type    string            `yaml:"type"`
	End     int               `yaml:"end"`
	Pack    string            `yaml:"pack"`
	Sound   string            `yaml:"sound"`
	Target  string            `yaml:"target"`
	Trigger string            `yaml:"trigger"`
	Params  map[string]string `yaml:"params"`
}

type cellDoc struct {
	Measure int        `yaml:"measure"`
	Beat    int        `yaml:"beat"`
	ID      string     `yaml:"id"`
	Events  []eventDoc `yaml:"events"`
}

var eventTypes = map[string]chart.EventType{
	"tap":       chart.Tap,
	"heavy":     chart.Heavy,
	"hold":      chart.Hold,
	"sound":     chart.SoundEffect,
	"animation": chart.Animation,
}

func (p *DefaultParser) mapEvent(doc *eventDoc) (chart.GridEvent, error) {
	t, ok := eventTypes[doc.Type]
	if !ok {
		return chart.GridEvent{}, fmt.Errorf(
			"unknown event type %q at measure %v beat %v", doc.Type, doc.Measure, doc.Beat)
	}
	e := chart.GridEvent{
		Measure: doc.Measure,
		Beat:    doc.Beat,
		Type:    t,
	}
	switch t {
	case chart.Hold:
		e.HoldEndBeat = doc.End
	case chart.SoundEffect:
		e.SoundPackID = doc.Pack
		e.SoundType = eventTypes[doc.Sound]
	case chart.Animation:
		e.TargetObjectID = doc.Target
		e.AnimationTrigger = doc.Trigger
		e.AnimationParams = doc.Params
	}
	return e, nil
}

// Parse reads a chart document. Only the document shape is checked
// here, chart.Validate owns the semantics.
func (p *DefaultParser) Parse(file string) (*chart.Definition, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseBytes(data)
}

func (p *DefaultParser) ParseBytes(data []byte) (*chart.Definition, error) {
	var doc chartDoc
	if err := yaml.Unmarshal(data, &doc); nil != err {
		return nil, fmt.Errorf("unable to decode chart: %w", err)
	}

	d := &chart.Definition{
		Title:           doc.Title,
		BPM:             doc.BPM,
		Measures:        doc.Measures,
		BeatsPerMeasure: doc.Beats,
		Events:          []chart.GridEvent{},
		Cells:           []chart.Cell{},
	}

	for i := range doc.Events {
		e, err := p.mapEvent(&doc.Events[i])
		if nil != err {
			return nil, err
		}
		d.Events = append(d.Events, e)
	}

	for i := range doc.Cells {
		cd := &doc.Cells[i]
		c := chart.Cell{
			Measure:   cd.Measure,
			Beat:      cd.Beat,
			ID:        cd.ID,
			SubEvents: []chart.GridEvent{},
		}
		for j := range cd.Events {
			e, err := p.mapEvent(&cd.Events[j])
			if nil != err {
				return nil, fmt.Errorf("cell %v: %w", cd.ID, err)
			}
			c.SubEvents = append(c.SubEvents, e)
		}
		c.Align()
		d.Cells = append(d.Cells, c)
	}

	return d, nil
}
