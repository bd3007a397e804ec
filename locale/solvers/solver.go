// Package solvers contains post-load passes applied to a locale catalog.
// Each pass rewrites string values in place: the variables solver resolves
// ${key} references so one locale can alias another's spellings, and the
// expression solver evaluates {{ ... }} values.
package solvers

import (
	"fmt"
	"reflect"

	"github.com/knadh/koanf/v2"
)

// CatalogSolver transforms a loaded catalog. Solvers run after all sources
// have been merged and may be applied in multiple passes to settle chained
// references.
type CatalogSolver interface {
	Solve(catalog *koanf.Koanf) *koanf.Koanf
}

func toString(v any) string {
	return fmt.Sprintf("%v", reflect.ValueOf(v))
}

type delimiters struct {
	Start string
	End   string
}
