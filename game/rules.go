package game

// Rules captures the variant a game is played under: which action kinds
// agents are allowed to submit. Submitting a kind the rules do not
// permit is a structural violation, not a state-dependent one.
type Rules interface {
	// Permits reports whether agents may submit actions of this kind.
	Permits(kind ActionKind) bool
	// Kinds lists the permitted kinds, for display and errors.
	Kinds() []ActionKind
}
