package locale

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-scan/locale/solvers"
	"github.com/goliatone/go-scan/logger"
	"github.com/goliatone/go-scan/scanerr"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/copystructure"
	"github.com/spf13/pflag"
)

var (
	DefaultDelimiter   = "."
	DefaultLoadTimeout = 30 * time.Second
	// DefaultSolverPasses settles chained catalog references, e.g. an alias
	// of an alias.
	DefaultSolverPasses = 2
)

// builtinSpellings are the compiled-in defaults merged below every other
// source. The classic "C" locale always resolves.
var builtinSpellings = map[string]any{
	"C":  map[string]any{"true": "true", "false": "false"},
	"en": map[string]any{"true": "true", "false": "false"},
	"fi": map[string]any{"true": "tosi", "false": "epätosi"},
	"fr": map[string]any{"true": "vrai", "false": "faux"},
	"de": map[string]any{"true": "wahr", "false": "falsch"},
	"es": map[string]any{"true": "verdadero", "false": "falso"},
}

// Registry aggregates locale spellings from prioritized sources into a koanf
// store and serves cached, read-only lookups. It implements Provider.
//
// Lookups are safe for concurrent use once Load has returned; the cache is
// guarded and every returned value is a copy.
type Registry struct {
	k            *koanf.Koanf
	delimiter    string
	loadTimeout  time.Duration
	builders     []SourceBuilder
	sources      []Source
	solvers      []solvers.CatalogSolver
	solverPasses int
	logger       logger.Logger
	loaded       bool

	mu    sync.RWMutex
	cache map[string]Names
}

// NewRegistry builds a registry preloaded with the builtin spellings and the
// variables solver. Additional sources and solvers are attached with the
// With* methods before Load.
func NewRegistry(builders ...SourceBuilder) *Registry {
	r := &Registry{
		delimiter:    DefaultDelimiter,
		loadTimeout:  DefaultLoadTimeout,
		solverPasses: DefaultSolverPasses,
		logger:       logger.Noop{},
		cache:        map[string]Names{},
	}
	r.builders = append(r.builders, BuiltinSource(builtinSpellings))
	r.builders = append(r.builders, builders...)
	r.solvers = append(r.solvers, solvers.NewVariablesSolver("${", "}"))
	return r
}

func (r *Registry) WithCatalogFile(path string, order ...int) *Registry {
	r.builders = append(r.builders, FileSource(path, order...))
	return r
}

func (r *Registry) WithStructCatalog(catalog any, order ...int) *Registry {
	r.builders = append(r.builders, StructSource(catalog, order...))
	return r
}

func (r *Registry) WithDefaults(def map[string]any, order ...int) *Registry {
	r.builders = append(r.builders, BuiltinSource(def, order...))
	return r
}

func (r *Registry) WithFlags(flags *pflag.FlagSet, order ...int) *Registry {
	r.builders = append(r.builders, FlagsSource(flags, order...))
	return r
}

func (r *Registry) WithSource(builders ...SourceBuilder) *Registry {
	r.builders = append(r.builders, builders...)
	return r
}

func (r *Registry) WithSolver(s ...solvers.CatalogSolver) *Registry {
	for _, solver := range s {
		if solver == nil {
			continue
		}
		r.solvers = append(r.solvers, solver)
	}
	return r
}

func (r *Registry) WithSolverPasses(passes int) *Registry {
	if passes > 0 {
		r.solverPasses = passes
	}
	return r
}

func (r *Registry) WithDelimiter(delim string) *Registry {
	if delim != "" {
		r.delimiter = delim
	}
	return r
}

func (r *Registry) WithLoadTimeout(d time.Duration) *Registry {
	if d > 0 {
		r.loadTimeout = d
	}
	return r
}

func (r *Registry) WithLogger(l logger.Logger) *Registry {
	if l != nil {
		r.logger = l
	}
	return r
}

// Load builds every source, applies them in priority order, then runs the
// solver passes. It must be called before Names.
func (r *Registry) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.loadTimeout)
	defer cancel()

	r.k = koanf.New(r.delimiter)

	r.sources = r.sources[:0]
	for _, build := range r.builders {
		src, err := build(r)
		if err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to create catalog source").
				WithTextCode("CATALOG_SOURCE_FAILED")
		}
		if err := src.Validate(); err != nil {
			return err
		}
		r.sources = append(r.sources, src)
	}

	sort.SliceStable(r.sources, func(i, j int) bool {
		return r.sources[i].Priority() < r.sources[j].Priority()
	})

	for _, src := range r.sources {
		r.logger.Debug("loading catalog source: %s", src.Type())
		if err := src.Load(ctx, r.k); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to load catalog source").
				WithTextCode("CATALOG_LOAD_FAILED").
				WithMetadata(map[string]any{
					"source_type": src.Type().String(),
				})
		}
	}

	for i := 0; i < r.solverPasses; i++ {
		for _, solver := range r.solvers {
			r.k = solver.Solve(r.k)
		}
	}

	r.mu.Lock()
	r.cache = map[string]Names{}
	r.loaded = true
	r.mu.Unlock()

	return nil
}

// MustLoad is Load with panic-on-error, for program setup paths.
func (r *Registry) MustLoad(ctx context.Context) *Registry {
	if err := r.Load(ctx); err != nil {
		panic(err)
	}
	return r
}

// Names resolves a locale identifier to its boolean spellings. Resolution
// order: exact identifier, then the language part of a region-qualified
// identifier ("en-US" falls back to "en"). The empty identifier means the
// classic locale.
func (r *Registry) Names(id string) (Names, error) {
	if id == "" {
		return Classic(), nil
	}

	r.mu.RLock()
	if names, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return names, nil
	}
	loaded := r.loaded
	r.mu.RUnlock()

	if !loaded {
		return Names{}, errors.New("locale registry not loaded", errors.CategoryOperation).
			WithTextCode("REGISTRY_NOT_LOADED")
	}

	names, ok := r.lookup(id)
	if !ok {
		if idx := strings.IndexAny(id, "-_"); idx > 0 {
			if fallback, found := r.lookup(id[:idx]); found {
				r.logger.Debug("locale %q resolved via language fallback %q", id, id[:idx])
				r.store(id, fallback)
				return fallback, nil
			}
		}
		return Names{}, scanerr.UnknownLocale(id)
	}

	r.store(id, names)
	return names, nil
}

func (r *Registry) lookup(id string) (Names, bool) {
	if !r.k.Exists(id) {
		return Names{}, false
	}
	names, err := decodeNames(r.k.Get(id))
	if err != nil {
		r.logger.Error("failed to decode catalog entry %q: %v", id, err)
		return Names{}, false
	}
	if names.True == "" || names.False == "" {
		return Names{}, false
	}
	return names, true
}

func (r *Registry) store(id string, names Names) {
	r.mu.Lock()
	r.cache[id] = names
	r.mu.Unlock()
}

// Catalog returns a deep copy of the merged catalog so callers cannot mutate
// registry state through the snapshot.
func (r *Registry) Catalog() map[string]any {
	if r.k == nil {
		return map[string]any{}
	}
	raw := r.k.Raw()
	cloned, err := copystructure.Copy(raw)
	if err != nil {
		r.logger.Warn("catalog snapshot copy failed, returning live map: %v", err)
		return raw
	}
	return cloned.(map[string]any)
}
