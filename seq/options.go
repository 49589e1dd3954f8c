package seq

// Rule selects how the generator derives the step between successive values.
type Rule int

const (
	// Derive steps by the magnitude of the finest decimal place of the
	// bounds, so integer bounds step by 1 and "0.05" steps by 0.01.
	Derive Rule = iota
	// Increment behaves like Derive but never steps by more than 1.
	Increment
	// SequenceLength steps by the number of distinct characters in the
	// bound's string form.
	SequenceLength
	// SequencePlusLastSkip steps by the SequenceLength value plus the
	// code distance between the bound's last two characters plus one.
	SequencePlusLastSkip
)

func (r Rule) String() string {
	switch r {
	case Derive:
		return "derive"
	case Increment:
		return "increment"
	case SequenceLength:
		return "sequence_length"
	case SequencePlusLastSkip:
		return "sequence_plus_last_skip"
	default:
		return "unknown"
	}
}

type options struct {
	inclusive bool
	rule      Rule
}

// Option customises sequence generation.
type Option func(*options)

// Inclusive makes the upper (or lower, when descending) bound part of the
// generated sequence.
func Inclusive() Option {
	return func(o *options) { o.inclusive = true }
}

// WithRule selects the increment rule. Defaults to Derive.
func WithRule(r Rule) Option {
	return func(o *options) { o.rule = r }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
