package game

// StandardRules is plain connect four: placing is the only permitted
// action.
type StandardRules struct{}

func NewStandardRules() StandardRules { return StandardRules{} }

func (StandardRules) Permits(kind ActionKind) bool { return kind == Place }

func (StandardRules) Kinds() []ActionKind { return []ActionKind{Place} }
