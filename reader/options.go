// Package reader implements the typed readers behind a scan call. Every
// reader follows the same contract: validate the format spec, derive an
// option set from it, then match against the input range, consuming input
// only on success.
package reader

import (
	"github.com/goliatone/go-scan/spec"
)

// Strategy identifies one matching strategy a reader may attempt.
type Strategy int

const (
	// StrategyNumeric matches the numeric form of a value.
	StrategyNumeric Strategy = iota
	// StrategyText matches the textual form, classic or locale-supplied.
	StrategyText
)

func (s Strategy) String() string {
	switch s {
	case StrategyNumeric:
		return "numeric"
	case StrategyText:
		return "text"
	default:
		return "unknown"
	}
}

// Options is the set of strategies a read is allowed to attempt. Strategies
// always run in fixed priority order: numeric before text, regardless of the
// order they were enabled in. The ordering contract lives here, in the
// constructor, rather than in call-site flag checks.
type Options struct {
	strategies []Strategy
}

// NewOptions enables the given strategies, deduplicated and normalized into
// priority order.
func NewOptions(strategies ...Strategy) Options {
	var numeric, text bool
	for _, s := range strategies {
		switch s {
		case StrategyNumeric:
			numeric = true
		case StrategyText:
			text = true
		}
	}
	var ordered []Strategy
	if numeric {
		ordered = append(ordered, StrategyNumeric)
	}
	if text {
		ordered = append(ordered, StrategyText)
	}
	return Options{strategies: ordered}
}

// DefaultOptions enables both strategies.
func DefaultOptions() Options {
	return NewOptions(StrategyNumeric, StrategyText)
}

// Strategies returns the enabled strategies in priority order.
func (o Options) Strategies() []Strategy {
	return o.strategies
}

// Allows reports whether a strategy is enabled.
func (o Options) Allows(want Strategy) bool {
	for _, s := range o.strategies {
		if s == want {
			return true
		}
	}
	return false
}

// OptionsForSpec maps a format spec to the strategies it permits. The mapping
// is total: string presentation narrows to text, generic int narrows to
// numeric, and every other presentation (default included) leaves both
// enabled.
func OptionsForSpec(s *spec.Spec) Options {
	switch s.Type {
	case spec.PresentationString:
		return NewOptions(StrategyText)
	case spec.PresentationIntGeneric:
		return NewOptions(StrategyNumeric)
	default:
		return DefaultOptions()
	}
}
