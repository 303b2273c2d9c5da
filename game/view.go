package game

// StateView is the immutable snapshot handed to agents: the board
// dimensions plus the cells in row-major order, top row first, each
// holding the occupying token or Empty. Internal ids never appear here.
type StateView struct {
	Rows    int
	Columns int
	Board   []Token
}

// At returns the token at the zero-based row and column.
func (v StateView) At(row, col int) Token {
	return v.Board[row*v.Columns+col]
}

// OpenColumns lists the 1-based columns that can still take a token,
// left to right. A column is open exactly when its top cell is empty.
func (v StateView) OpenColumns() []int {
	open := make([]int, 0, v.Columns)
	for col := 0; col < v.Columns; col++ {
		if v.Board[col] == Empty {
			open = append(open, col+1)
		}
	}
	return open
}
