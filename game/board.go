package game

// Board size of a standard game.
const (
	DefaultRows    = 6
	DefaultColumns = 7
)

// runLength is the number of aligned tokens that completes a line.
const runLength = 4

// cell holds the internal id of the token occupying a board cell, or
// emptyCell when vacant. Internal ids never leave this package.
type cell int8

const emptyCell cell = -1

// maxTokens is the largest number of internal ids a cell can encode.
const maxTokens = 127

// board is a fixed-size grid stored as a flat row-major slice, top row
// first: cell (row, col) in zero-based coordinates lives at index
// row*cols+col.
type board struct {
	rows  int
	cols  int
	cells []cell
}

func newBoard(rows, cols int) board {
	cells := make([]cell, rows*cols)
	for i := range cells {
		cells[i] = emptyCell
	}
	return board{rows: rows, cols: cols, cells: cells}
}

func (b *board) at(row, col int) cell {
	return b.cells[row*b.cols+col]
}

// drop puts id into the lowest empty cell of the zero-based column and
// returns the row it settled in, or false when the column is full.
// Occupied cells are never overwritten.
func (b *board) drop(col int, id cell) (int, bool) {
	for row := b.rows - 1; row >= 0; row-- {
		i := row*b.cols + col
		if b.cells[i] == emptyCell {
			b.cells[i] = id
			return row, true
		}
	}
	return 0, false
}

// pop clears the topmost occupied cell of the zero-based column and
// returns the id it held, or false when the column is empty.
func (b *board) pop(col int) (cell, bool) {
	for row := 0; row < b.rows; row++ {
		i := row*b.cols + col
		if b.cells[i] != emptyCell {
			id := b.cells[i]
			b.cells[i] = emptyCell
			return id, true
		}
	}
	return emptyCell, false
}

func (b *board) full() bool {
	for _, c := range b.cells {
		if c == emptyCell {
			return false
		}
	}
	return true
}

// forEachLine visits every run of runLength cells exactly once, in a
// fixed scan order: horizontal runs row by row from the top, vertical
// runs column by column from the left, then down-right diagonals, then
// down-left diagonals. A board shorter than runLength in a direction
// simply has no runs in that direction. Visiting stops when visit
// returns false.
func (b *board) forEachLine(visit func(line [runLength]cell) bool) {
	var line [runLength]cell

	for row := 0; row < b.rows; row++ {
		for col := 0; col+runLength <= b.cols; col++ {
			start := row*b.cols + col
			for i := range line {
				line[i] = b.cells[start+i]
			}
			if !visit(line) {
				return
			}
		}
	}
	for col := 0; col < b.cols; col++ {
		for row := 0; row+runLength <= b.rows; row++ {
			start := row*b.cols + col
			for i := range line {
				line[i] = b.cells[start+i*b.cols]
			}
			if !visit(line) {
				return
			}
		}
	}
	for row := 0; row+runLength <= b.rows; row++ {
		for col := 0; col+runLength <= b.cols; col++ {
			start := row*b.cols + col
			for i := range line {
				line[i] = b.cells[start+i*(b.cols+1)]
			}
			if !visit(line) {
				return
			}
		}
	}
	for row := 0; row+runLength <= b.rows; row++ {
		for col := runLength - 1; col < b.cols; col++ {
			start := row*b.cols + col
			for i := range line {
				line[i] = b.cells[start+i*(b.cols-1)]
			}
			if !visit(line) {
				return
			}
		}
	}
}

// winner returns the id owning a completed run. Lines are scanned in the
// fixed order above, so the first completed run decides.
func (b *board) winner() (cell, bool) {
	won := emptyCell
	b.forEachLine(func(line [runLength]cell) bool {
		first := line[0]
		if first == emptyCell {
			return true
		}
		for _, c := range line[1:] {
			if c != first {
				return true
			}
		}
		won = first
		return false
	})
	return won, won != emptyCell
}
