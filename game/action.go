package game

import "fmt"

// ActionKind identifies the kind of action an agent can submit. The set
// is closed: the state engine dispatches over it explicitly.
type ActionKind int

const (
	// Place drops a token into a column from above.
	Place ActionKind = iota
	// Remove pops the topmost token out of a column. Only permitted when
	// the game runs under the pop-out rule.
	Remove
)

func (k ActionKind) String() string {
	switch k {
	case Place:
		return "PLACE"
	case Remove:
		return "REMOVE"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one agent decision: a kind plus the column it targets.
// Columns are indexed from 1.
type Action struct {
	Kind   ActionKind
	Column int
}

func (a Action) String() string {
	return fmt.Sprintf("%s, %d", a.Kind, a.Column)
}

// ActionError reports an action that is well-formed but illegal in the
// current position, such as placing into a full column. These are
// recoverable: the position is unchanged and the agent may try again.
type ActionError struct {
	Action Action
	Reason string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("cannot apply %v: %s", e.Action, e.Reason)
}
