package phylo

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse  ErrKind = iota // malformed Newick input
	ErrKindIO                    // missing or unreadable input file
	ErrKindEmpty                 // tree has no root
	ErrKindRender                // output could not be produced
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrEmptyTree indicates an operation received a tree without a root.
	ErrEmptyTree = &Error{Kind: ErrKindEmpty, Msg: "tree is empty"}
)
