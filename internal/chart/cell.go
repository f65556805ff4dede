package chart

// Cell is zero or more events sharing one grid position, authored as a
// group. A cell owns no time of its own, the scheduler flattens it into
// its sub-events.
type Cell struct {
	Measure   int
	Beat      int
	ID        string
	SubEvents []GridEvent
}

func (c *Cell) SamePos(measure, beat int) bool {
	return c.Measure == measure && c.Beat == beat
}

// Align forces every sub-event onto the cell's own position.
func (c *Cell) Align() {
	for i := range c.SubEvents {
		c.SubEvents[i].Measure = c.Measure
		c.SubEvents[i].Beat = c.Beat
	}
}
