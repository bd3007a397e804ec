package solvers

import (
	"strings"

	opts "github.com/goliatone/go-options"
	"github.com/knadh/koanf/v2"
)

const (
	defaultExpressionStart = "{{"
	defaultExpressionEnd   = "}}"
)

// EvalErrorHandler customizes handling of expression evaluation failures.
// Return true to mark the error as handled.
type EvalErrorHandler func(key string, expr string, err error, catalog *koanf.Koanf) bool

type expression struct {
	delims    *delimiters
	evaluator opts.Evaluator
	onError   EvalErrorHandler
}

// NewExpressionSolver evaluates catalog values wrapped entirely in the given
// delimiters (default {{ }}) using the default expr evaluator. The catalog
// snapshot is the evaluation context, so expressions can derive a spelling
// from other entries.
func NewExpressionSolver(start, end string) CatalogSolver {
	return NewExpressionSolverWithEvaluator(start, end, nil, nil)
}

// NewExpressionSolverWithEvaluator allows a custom evaluator and error handler.
func NewExpressionSolverWithEvaluator(start, end string, eval opts.Evaluator, onErr EvalErrorHandler) CatalogSolver {
	if eval == nil {
		eval = opts.NewExprEvaluator()
	}
	if onErr == nil {
		onErr = OnEvalLeaveUnchanged()
	}
	if start == "" {
		start = defaultExpressionStart
	}
	if end == "" {
		end = defaultExpressionEnd
	}

	return &expression{
		delims:    &delimiters{Start: start, End: end},
		evaluator: eval,
		onError:   onErr,
	}
}

// Solve evaluates every fully-delimited string value in the catalog.
func (s expression) Solve(catalog *koanf.Koanf) *koanf.Koanf {
	if catalog == nil {
		return catalog
	}

	for key, val := range catalog.All() {
		str, ok := val.(string)
		if !ok {
			continue
		}
		expr, ok := s.fullMatch(str)
		if !ok {
			continue
		}

		expr = strings.TrimSpace(expr)
		result, err := s.evaluator.Evaluate(opts.RuleContext{Snapshot: catalog.Raw()}, expr)
		if err != nil {
			if s.onError != nil {
				s.onError(key, expr, err, catalog)
			}
			continue
		}

		catalog.Set(key, result)
	}

	return catalog
}

func (s expression) fullMatch(input string) (string, bool) {
	if s.delims == nil {
		return "", false
	}
	if !strings.HasPrefix(input, s.delims.Start) || !strings.HasSuffix(input, s.delims.End) {
		return "", false
	}

	start := len(s.delims.Start)
	end := len(input) - len(s.delims.End)
	if end < start {
		return "", false
	}
	return input[start:end], true
}

// OnEvalLeaveUnchanged keeps the original value on evaluation failure.
func OnEvalLeaveUnchanged() EvalErrorHandler {
	return func(string, string, error, *koanf.Koanf) bool {
		return true
	}
}

// OnEvalRemove deletes the failing key from the catalog.
func OnEvalRemove() EvalErrorHandler {
	return func(key string, _ string, _ error, catalog *koanf.Koanf) bool {
		if catalog != nil {
			catalog.Delete(key)
		}
		return true
	}
}
