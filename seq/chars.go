package seq

import (
	"unicode/utf8"

	"github.com/kbukum/arrkit/logger"
	"github.com/kbukum/arrkit/str"
)

// Chars builds a character sequence from from towards to. The last character
// of to is the stopping character; every step shifts each character of the
// current value independently by the resolved increment. There is no
// carry between positions and no wraparound past the end of a character
// class, so bounds are expected to stay within one run of codes.
func Chars(from, to string, opts ...Option) *Sequence[string] {
	o := buildOptions(opts)
	from = str.Trim(from)
	to = str.Trim(to)
	if from == "" || to == "" {
		log.Warn("empty character bound, yielding empty sequence")
		return empty[string]()
	}

	stop := str.LastChar(to)
	sign := 1
	if str.FirstChar(from) > stop {
		sign = -1
	}

	step := min(charIncrement(from, o.rule), charIncrement(to, o.rule))
	if step <= 0 {
		log.Warn("non-positive increment, yielding empty sequence",
			logger.Fields("rule", o.rule.String(), "step", step))
		return empty[string]()
	}
	step *= sign

	origLen := utf8.RuneCountInString(from)

	return &Sequence[string]{start: func() func() (string, bool) {
		cur := from
		terminal := false
		return func() (string, bool) {
			if cur == "" {
				return "", false
			}
			out := cur
			if terminal {
				cur = ""
			} else {
				cur, terminal = succChars(cur, origLen, step, stop, sign, o.inclusive)
			}
			return out, true
		}
	}}
}

// succChars computes the value following cur. The second result reports that
// the stopping character was reached, making the returned value the last one.
func succChars(cur string, origLen, step int, stop rune, sign int, inclusive bool) (string, bool) {
	runes := []rune(cur)

	// A value that shrank below the starting length regrows by one
	// character derived from its own tail before shifting.
	if len(runes) < origLen {
		runes = append(runes, runes[len(runes)-1])
	}

	for i := range runes {
		runes[i] += rune(step)
	}

	// Trailing characters that moved past the stopping character fall off.
	for len(runes) > 0 {
		last := runes[len(runes)-1]
		if (sign > 0 && last > stop) || (sign < 0 && last < stop) {
			runes = runes[:len(runes)-1]
			continue
		}
		break
	}

	for i, r := range runes {
		if r != stop {
			continue
		}
		if inclusive {
			return string(runes[:i+1]), true
		}
		return string(runes[:i]), true
	}
	return string(runes), false
}

// charIncrement resolves one bound's contribution to the character step.
// Character bounds have no decimal places, so the place-value rules both
// step by a single code point.
func charIncrement(form string, rule Rule) int {
	switch rule {
	case SequenceLength:
		return str.DistinctChars(form)
	case SequencePlusLastSkip:
		return str.DistinctChars(form) + lastSkip(form) + 1
	default:
		return 1
	}
}
