package chip

import "testing"

func TestWindowReset(t *testing.T) {
	var w window
	w.setColumns(5, 9)
	w.setRows(3, 7)
	w.reset(240, 240)
	if w.colStart != 0 || w.colEnd != 239 || w.rowStart != 0 || w.rowEnd != 239 {
		t.Fatalf("window bounds after reset: %+v", w)
	}
	if w.col != 0 || w.row != 0 {
		t.Fatalf("cursor after reset: (%d,%d)", w.col, w.row)
	}
}

func TestWindowSetResetsCursorAxis(t *testing.T) {
	var w window
	w.reset(240, 240)
	w.col, w.row = 50, 60

	w.setColumns(10, 20)
	if w.col != 10 {
		t.Fatalf("cursor column = %d, want 10", w.col)
	}
	if w.row != 60 {
		t.Fatalf("cursor row changed by setColumns: %d", w.row)
	}

	w.setRows(30, 40)
	if w.row != 30 {
		t.Fatalf("cursor row = %d, want 30", w.row)
	}
	if w.col != 10 {
		t.Fatalf("cursor column changed by setRows: %d", w.col)
	}
}

func TestWindowAdvanceWraps(t *testing.T) {
	var w window
	w.setColumns(0, 1)
	w.setRows(0, 1)

	w.advance() // (1,0)
	if w.col != 1 || w.row != 0 {
		t.Fatalf("after 1 advance: (%d,%d)", w.col, w.row)
	}
	w.advance() // wraps column to next row
	if w.col != 0 || w.row != 1 {
		t.Fatalf("after 2 advances: (%d,%d)", w.col, w.row)
	}
	w.advance()
	w.advance() // wraps the whole window back to its start
	if w.col != 0 || w.row != 0 {
		t.Fatalf("after 4 advances: (%d,%d)", w.col, w.row)
	}
}

func TestWindowInBounds(t *testing.T) {
	var w window
	w.setColumns(10, 20)
	w.setRows(30, 40)
	w.col, w.row = 10, 30
	if !w.inBounds() {
		t.Fatal("window start should be in bounds")
	}
	w.col = 21
	if w.inBounds() {
		t.Fatal("column past end should be out of bounds")
	}
	w.col, w.row = 15, 29
	if w.inBounds() {
		t.Fatal("row before start should be out of bounds")
	}
}
