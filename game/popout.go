package game

// PopOutRules additionally lets agents pop the topmost token out of a
// column, whichever agent placed it.
type PopOutRules struct{}

func NewPopOutRules() PopOutRules { return PopOutRules{} }

func (PopOutRules) Permits(kind ActionKind) bool {
	return kind == Place || kind == Remove
}

func (PopOutRules) Kinds() []ActionKind { return []ActionKind{Place, Remove} }
