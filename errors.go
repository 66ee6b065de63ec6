package flexy

import (
	"fmt"
)

// Kind identifies the category of a runtime condition.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMissingNode: a logical name does not resolve to a live element (yet).
	KindMissingNode
	// KindMalformedRatio: the design container has degenerate dimensions.
	KindMalformedRatio
	// KindTemplateCapture: the list or item node was absent at capture time.
	KindTemplateCapture
	// KindMarkup: markup handed to the runtime could not be parsed.
	KindMarkup
)

func (k Kind) String() string {
	switch k {
	case KindMissingNode:
		return "missing-node"
	case KindMalformedRatio:
		return "malformed-ratio"
	case KindTemplateCapture:
		return "template-capture"
	case KindMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Error describes a condition met by the runtime. Missing nodes, malformed
// ratios and template capture failures never reach callers: they are logged
// at debug level and the operation degrades to a no-op.
type Error struct {
	// Op is the operation that met the condition (e.g. "list.capture").
	Op   string
	Kind Kind
	// Name is the logical name involved, if any.
	Name string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if msg == "" {
		msg = "flexy"
	}
	msg += " [" + e.Kind.String() + "]"
	if e.Name != "" {
		msg += fmt.Sprintf(" name=%q", e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel errors below by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Name == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrMissingNode     = &Error{Kind: KindMissingNode}
	ErrMalformedRatio  = &Error{Kind: KindMalformedRatio}
	ErrTemplateCapture = &Error{Kind: KindTemplateCapture}
	ErrMarkup          = &Error{Kind: KindMarkup}
)
