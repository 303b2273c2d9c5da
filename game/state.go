package game

import "fmt"

// Token is the opaque identifier an agent plays as. The engine never
// interprets tokens beyond comparing them; display code may use the
// first rune as a cell glyph.
type Token string

// Empty marks a vacant cell in a StateView.
const Empty Token = ""

// State is the authoritative position of a single game. Tokens are
// mapped to compact internal ids once at construction; the board stores
// ids only and every view translates back, so ids never escape.
type State struct {
	board  board
	ids    map[Token]cell // token -> internal id
	tokens []Token        // internal id -> token
}

// NewState returns an empty rows x cols board with one internal id per
// token. Dimensions must be strictly positive and tokens non-empty and
// pairwise distinct. Boards smaller than 4 in both dimensions are legal,
// they just cannot be won.
func NewState(tokens []Token, rows, cols int) (*State, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("board size %dx%d is not strictly positive", rows, cols)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("at least one token is required")
	}
	if len(tokens) > maxTokens {
		return nil, fmt.Errorf("cannot encode more than %d tokens", maxTokens)
	}
	s := &State{
		board:  newBoard(rows, cols),
		ids:    make(map[Token]cell, len(tokens)),
		tokens: make([]Token, len(tokens)),
	}
	for i, t := range tokens {
		if t == Empty {
			return nil, fmt.Errorf("token %d is empty", i)
		}
		if _, dup := s.ids[t]; dup {
			return nil, fmt.Errorf("token %q appears twice", t)
		}
		s.ids[t] = cell(i)
		s.tokens[i] = t
	}
	return s, nil
}

// Place drops token into the 1-based column, settling in the lowest
// empty cell. The position is unchanged when an error comes back.
func (s *State) Place(column int, token Token) error {
	id, ok := s.ids[token]
	if !ok {
		return fmt.Errorf("token %q is not part of this game", token)
	}
	act := Action{Kind: Place, Column: column}
	if column < 1 || column > s.board.cols {
		return &ActionError{Action: act, Reason: outOfRange(column, s.board.cols)}
	}
	if _, ok := s.board.drop(column-1, id); !ok {
		return &ActionError{Action: act, Reason: fmt.Sprintf("column %d is full", column)}
	}
	return nil
}

// Remove pops the topmost token out of the 1-based column, whichever
// agent placed it. Reachable only under the pop-out rule.
func (s *State) Remove(column int, token Token) error {
	if _, ok := s.ids[token]; !ok {
		return fmt.Errorf("token %q is not part of this game", token)
	}
	act := Action{Kind: Remove, Column: column}
	if column < 1 || column > s.board.cols {
		return &ActionError{Action: act, Reason: outOfRange(column, s.board.cols)}
	}
	if _, ok := s.board.pop(column - 1); !ok {
		return &ActionError{Action: act, Reason: fmt.Sprintf("column %d is empty", column)}
	}
	return nil
}

// Apply routes act to the matching mutation. An unrecognized kind is a
// caller bug, not a property of the position, so it is not an
// ActionError.
func (s *State) Apply(act Action, token Token) error {
	switch act.Kind {
	case Place:
		return s.Place(act.Column, token)
	case Remove:
		return s.Remove(act.Column, token)
	default:
		return fmt.Errorf("unknown action kind %v", act.Kind)
	}
}

// CheckOutcome inspects the position: a completed run wins for its
// owner, a full board without one is a draw, anything else is still
// unfinished. The winning token is Empty unless the status is Won.
func (s *State) CheckOutcome() (Status, Token) {
	if id, ok := s.board.winner(); ok {
		return Won, s.tokens[id]
	}
	if s.board.full() {
		return Drawn, Empty
	}
	return Unfinished, Empty
}

// View snapshots the position for an agent: dimensions plus the board
// cells translated back to tokens. The copy is fresh on every call, so
// holders can never reach the authoritative state through it.
func (s *State) View() StateView {
	cells := make([]Token, len(s.board.cells))
	for i, c := range s.board.cells {
		if c != emptyCell {
			cells[i] = s.tokens[c]
		}
	}
	return StateView{Rows: s.board.rows, Columns: s.board.cols, Board: cells}
}

func outOfRange(column, cols int) string {
	return fmt.Sprintf("column %d lies outside the board, columns are indexed from 1 to %d", column, cols)
}
