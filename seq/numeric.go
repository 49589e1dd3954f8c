package seq

import (
	"math"
	"strings"

	"github.com/kbukum/arrkit/logger"
	"github.com/kbukum/arrkit/str"
)

func numbers(from, to float64, fromForm, toForm string, o options) *Sequence[float64] {
	sign := 1.0
	if from > to {
		sign = -1.0
	}

	incFrom := boundIncrement(fromForm, o.rule)
	incTo := boundIncrement(toForm, o.rule)
	step := math.Min(incFrom, incTo)
	if step <= 0 {
		log.Warn("non-positive increment, yielding empty sequence",
			logger.Fields("rule", o.rule.String(), "step", step))
		return empty[float64]()
	}
	step *= sign

	precision := max(-decimalPower(fromForm), -decimalPower(toForm))

	within := func(v float64) bool {
		if sign > 0 {
			if o.inclusive {
				return v <= to
			}
			return v < to
		}
		if o.inclusive {
			return v >= to
		}
		return v > to
	}

	return &Sequence[float64]{start: func() func() (float64, bool) {
		v := from
		return func() (float64, bool) {
			if !within(v) {
				return 0, false
			}
			out := v
			v = roundTo(v+step, precision)
			return out, true
		}
	}}
}

// boundIncrement resolves one bound's contribution to the step size.
func boundIncrement(form string, rule Rule) float64 {
	switch rule {
	case Derive:
		return math.Pow(10, float64(decimalPower(form)))
	case Increment:
		return math.Min(math.Pow(10, float64(decimalPower(form))), 1)
	case SequenceLength:
		return float64(str.DistinctChars(form))
	case SequencePlusLastSkip:
		return float64(str.DistinctChars(form) + lastSkip(form) + 1)
	default:
		return 1
	}
}

// decimalPower reports the position of a bound's most significant fractional
// digit: 0 for integers, -k for k fractional digits. The form must be a
// plain decimal string without an exponent.
func decimalPower(form string) int {
	dot := strings.IndexByte(form, '.')
	if dot < 0 {
		return 0
	}
	return -(len(form) - dot - 1)
}

// lastSkip is the code distance between a bound's last two characters,
// or zero for single-character bounds.
func lastSkip(form string) int {
	runes := []rune(form)
	if len(runes) < 2 {
		return 0
	}
	return int(runes[len(runes)-1]) - int(runes[len(runes)-2])
}

func roundTo(v float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
