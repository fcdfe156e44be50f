package wire

// DefaultMaxDepth is the group/message nesting depth allowed by
// DefaultLimits. Real-world payloads rarely nest more than a handful of
// levels; the bound exists to stop adversarial input from exhausting the
// stack through recursive descent.
const DefaultMaxDepth = 100

// Limits defines parse-time resource bounds.
type Limits struct {
	// MaxDepth is the maximum group nesting depth accepted during parsing
	// and the maximum submessage depth followed by ToMap. Values <= 0 fall
	// back to DefaultMaxDepth.
	MaxDepth int
}

// DefaultLimits returns the standard bounds.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth}
}

// StrictLimits returns conservative bounds for constrained environments.
func StrictLimits() Limits {
	return Limits{MaxDepth: 16}
}

func (l Limits) normalized() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	return l
}
