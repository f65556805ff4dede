package chart

import "testing"

func TestAddEventRejectsTakenPositions(t *testing.T) {
	d := valid()
	if err := d.AddEvent(GridEvent{Measure: 1, Beat: 2, Type: Heavy}); nil == err {
		t.Log("expected duplicate position rejection")
		t.Fail()
	}
	if err := d.AddEvent(GridEvent{Measure: 3, Beat: 1, Type: Tap}); nil == err {
		t.Log("expected cell conflict rejection")
		t.Fail()
	}
	if err := d.AddEvent(GridEvent{Measure: 2, Beat: 0, Type: Tap}); nil != err {
		t.Log("unexpected rejection:", err)
		t.Fail()
	}
}

func TestRemoveEvent(t *testing.T) {
	d := valid()
	if !d.RemoveEvent(1, 2) {
		t.Fatal("event not removed")
	}
	if d.RemoveEvent(1, 2) {
		t.Fatal("event removed twice")
	}
	if len(d.Events) != 1 {
		t.Fatal("expected one event left, got", len(d.Events))
	}
}

func TestAddCellAlignsSubEvents(t *testing.T) {
	d := valid()
	cell := Cell{Measure: 2, Beat: 3, ID: "burst", SubEvents: []GridEvent{
		{Measure: 0, Beat: 0, Type: Tap},
		{Measure: 1, Beat: 1, Type: Heavy},
	}}
	if err := d.AddCell(cell); nil != err {
		t.Fatal(err)
	}
	added := d.CellAt(2, 3)
	if nil == added {
		t.Fatal("cell not added")
	}
	for _, e := range added.SubEvents {
		if !e.SamePos(2, 3) {
			t.Log("sub-event not aligned:", e.Measure, e.Beat)
			t.Fail()
		}
	}
}

func TestAddCellRejectsTakenPositions(t *testing.T) {
	d := valid()
	if err := d.AddCell(Cell{Measure: 3, Beat: 1, ID: "again"}); nil == err {
		t.Log("expected duplicate cell rejection")
		t.Fail()
	}
	if err := d.AddCell(Cell{Measure: 1, Beat: 2, ID: "clash"}); nil == err {
		t.Log("expected event conflict rejection")
		t.Fail()
	}
}

// Shrinking the grid drops everything past the new end
func TestResizeDropsOutOfRange(t *testing.T) {
	d := valid()
	d.Resize(2)
	if len(d.Events) != 2 {
		t.Log("events", d.Events)
		t.Fail()
	}
	if len(d.Cells) != 0 {
		t.Log("cells", d.Cells)
		t.Fail()
	}
	if ok, errs := Validate(d); !ok {
		t.Log("resized chart no longer valid:", errs)
		t.Fail()
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	d := valid()
	s := d.Snapshot()
	d.Events[0].Type = Heavy
	d.Cells[0].SubEvents[0].Type = Animation
	d.Resize(1)
	if s.Events[0].Type != Hold {
		t.Log("snapshot event mutated")
		t.Fail()
	}
	if s.Cells[0].SubEvents[0].Type != Tap {
		t.Log("snapshot cell mutated")
		t.Fail()
	}
	if s.Measures != 4 || len(s.Cells) != 1 {
		t.Log("snapshot resized")
		t.Fail()
	}
}
