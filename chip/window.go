package chip

// window is the inclusive address window plus the write cursor. The cursor
// auto-advances column first, wrapping column to row and the whole window
// back to its start, like the hardware address counter.
type window struct {
	colStart, colEnd int
	rowStart, rowEnd int
	col, row         int
}

// reset covers the full frame with the cursor at the origin.
func (w *window) reset(width, height int) {
	w.colStart, w.colEnd = 0, width-1
	w.rowStart, w.rowEnd = 0, height-1
	w.col, w.row = 0, 0
}

// setColumns applies CASET: new column bounds, cursor column back to the
// start. The row axis is untouched.
func (w *window) setColumns(start, end int) {
	w.colStart, w.colEnd = start, end
	w.col = start
}

// setRows applies RASET, symmetric to setColumns.
func (w *window) setRows(start, end int) {
	w.rowStart, w.rowEnd = start, end
	w.row = start
}

// advance moves the cursor one pixel. Past the last column it wraps to the
// next row; past the last row it wraps to the window start and writing
// continues.
func (w *window) advance() {
	w.col++
	if w.col > w.colEnd {
		w.col = w.colStart
		w.row++
		if w.row > w.rowEnd {
			w.row = w.rowStart
		}
	}
}

// inBounds reports whether the cursor lies inside the window.
func (w *window) inBounds() bool {
	return w.col >= w.colStart && w.col <= w.colEnd &&
		w.row >= w.rowStart && w.row <= w.rowEnd
}
