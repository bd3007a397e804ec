package locale

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// SourceBuilder defers source construction until the registry is configured.
type SourceBuilder func(*Registry) (Source, error)

type SourceType string

const (
	SourceTypeBuiltin SourceType = "builtin"
	SourceTypeStruct  SourceType = "struct"
	SourceTypeFile    SourceType = "file"
	SourceTypeFlag    SourceType = "pflag"
)

func (s SourceType) String() string {
	return string(s)
}

func (s SourceType) validate() error {
	switch s {
	case SourceTypeBuiltin, SourceTypeStruct, SourceTypeFile, SourceTypeFlag:
		return nil
	default:
		return errors.New("invalid catalog source type", errors.CategoryValidation).
			WithTextCode("INVALID_SOURCE_TYPE").
			WithMetadata(map[string]any{
				"source_type": string(s),
				"valid_types": []string{
					string(SourceTypeBuiltin),
					string(SourceTypeStruct),
					string(SourceTypeFile),
					string(SourceTypeFlag),
				},
			})
	}
}

// Source loads locale spellings into the registry's backing store. Sources
// are applied in ascending priority order so later sources override earlier
// ones key by key.
type Source interface {
	Type() SourceType
	Priority() int
	Validate() error
	Load(context.Context, *koanf.Koanf) error
}

type loader struct {
	order      int
	sourceType SourceType
	load       func(context.Context, *koanf.Koanf) error
}

func (l *loader) Priority() int {
	return l.order
}

func (l *loader) Type() SourceType {
	return l.sourceType
}

func (l *loader) Load(ctx context.Context, k *koanf.Koanf) error {
	return l.load(ctx, k)
}

func (l *loader) Validate() error {
	return l.sourceType.validate()
}

type Priority int

func (p Priority) WithOffset(offset int) Priority {
	return Priority(int(p) + offset)
}

var (
	PriorityBuiltin Priority = 0
	PriorityStruct  Priority = 10
	PriorityFile    Priority = 20
	PriorityFlags   Priority = 40
)

func getOrder(def Priority, order ...int) int {
	if len(order) > 0 {
		return order[0]
	}
	return int(def)
}

// BuiltinSource loads a nested map of locale spellings, normally the
// registry's compiled-in defaults.
func BuiltinSource(def map[string]any, order ...int) SourceBuilder {
	return func(r *Registry) (Source, error) {
		return &loader{
			sourceType: SourceTypeBuiltin,
			order:      getOrder(PriorityBuiltin, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := k.Load(confmap.Provider(def, r.delimiter), nil); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load builtin spellings").
						WithTextCode("BUILTIN_CATALOG_LOAD_FAILED").
						WithMetadata(map[string]any{
							"locales_count": len(def),
						})
				}
				return nil
			},
		}, nil
	}
}

// StructSource loads a catalog defined as a Go struct tagged with koanf tags.
func StructSource(catalog any, order ...int) SourceBuilder {
	return func(r *Registry) (Source, error) {
		return &loader{
			sourceType: SourceTypeStruct,
			order:      getOrder(PriorityStruct, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := k.Load(structs.Provider(catalog, "koanf"), nil); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load struct catalog").
						WithTextCode("STRUCT_CATALOG_LOAD_FAILED")
				}
				return nil
			},
		}, nil
	}
}

// FileSource loads a catalog file; the encoding is inferred from the file
// extension (json, yaml, toml).
func FileSource(filepath string, orders ...int) SourceBuilder {
	filetype := inferCatalogFiletype(filepath)
	return func(r *Registry) (Source, error) {
		if err := filetype.Valid(); err != nil {
			return nil, err
		}
		return &loader{
			sourceType: SourceTypeFile,
			order:      getOrder(PriorityFile, orders...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := k.Load(file.Provider(filepath), filetype.Parser()); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load catalog file").
						WithTextCode("CATALOG_FILE_LOAD_FAILED").
						WithMetadata(map[string]any{
							"filepath":  filepath,
							"file_type": filetype.String(),
						})
				}
				return nil
			},
		}, nil
	}
}

// FlagsSource overrides catalog keys from a pflag set; flag names are
// delimited catalog paths, e.g. --custom.true.
func FlagsSource(flags *pflag.FlagSet, orders ...int) SourceBuilder {
	return func(r *Registry) (Source, error) {
		return &loader{
			sourceType: SourceTypeFlag,
			order:      getOrder(PriorityFlags, orders...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := k.Load(posflag.Provider(flags, r.delimiter, k), nil); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load flag overrides").
						WithTextCode("FLAG_OVERRIDES_LOAD_FAILED")
				}
				return nil
			},
		}, nil
	}
}
