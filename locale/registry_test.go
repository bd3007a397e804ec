package locale

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-scan/scanerr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltinSpellings(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("fr")
	require.NoError(t, err)
	assert.Equal(t, Names{True: "vrai", False: "faux"}, names)

	names, err = reg.Names("C")
	require.NoError(t, err)
	assert.Equal(t, Classic(), names)
}

func TestRegistry_EmptyIDIsClassic(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("")
	require.NoError(t, err)
	assert.Equal(t, Classic(), names)
}

func TestRegistry_UnknownLocale(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	_, err := reg.Names("zz")
	require.Error(t, err)
	assert.Equal(t, scanerr.CodeUnknownLocale, scanerr.TextCode(err))
}

func TestRegistry_LanguageFallback(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "vrai", names.True)

	names, err = reg.Names("de_AT")
	require.NoError(t, err)
	assert.Equal(t, "wahr", names.True)
}

func TestRegistry_NotLoaded(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Names("en")
	require.Error(t, err)
}

func TestRegistry_FileCatalog(t *testing.T) {
	dir := t.TempDir()

	t.Run("json catalog overrides builtins", func(t *testing.T) {
		path := filepath.Join(dir, "locales.json")
		payload := `{"fr": {"true": "oui", "false": "non"}, "sv": {"true": "sant", "false": "falskt"}}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		reg := NewRegistry().WithCatalogFile(path)
		require.NoError(t, reg.Load(context.Background()))

		names, err := reg.Names("fr")
		require.NoError(t, err)
		assert.Equal(t, Names{True: "oui", False: "non"}, names)

		names, err = reg.Names("sv")
		require.NoError(t, err)
		assert.Equal(t, Names{True: "sant", False: "falskt"}, names)
	})

	t.Run("yaml catalog", func(t *testing.T) {
		path := filepath.Join(dir, "locales.yaml")
		payload := "nl:\n  true: waar\n  false: onwaar\n"
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		reg := NewRegistry().WithCatalogFile(path)
		require.NoError(t, reg.Load(context.Background()))

		names, err := reg.Names("nl")
		require.NoError(t, err)
		assert.Equal(t, Names{True: "waar", False: "onwaar"}, names)
	})

	t.Run("missing file fails load", func(t *testing.T) {
		reg := NewRegistry().WithCatalogFile(filepath.Join(dir, "missing.json"))
		require.Error(t, reg.Load(context.Background()))
	})
}

func TestRegistry_StructCatalog(t *testing.T) {
	type catalog struct {
		Klingon Names `koanf:"tlh"`
	}

	reg := NewRegistry().WithStructCatalog(catalog{
		Klingon: Names{True: "HIja'", False: "ghobe'"},
	})
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("tlh")
	require.NoError(t, err)
	assert.Equal(t, "HIja'", names.True)
	assert.Equal(t, "ghobe'", names.False)
}

func TestRegistry_DefaultsWithShorthand(t *testing.T) {
	reg := NewRegistry().WithDefaults(map[string]any{
		"pt": "verdadeiro|falso",
	})
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("pt")
	require.NoError(t, err)
	assert.Equal(t, Names{True: "verdadeiro", False: "falso"}, names)
}

func TestRegistry_FlagOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("fr.true", "", "")
	flags.String("fr.false", "", "")
	require.NoError(t, flags.Parse([]string{"--fr.true", "ouais", "--fr.false", "nan"}))

	reg := NewRegistry().WithFlags(flags)
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("fr")
	require.NoError(t, err)
	assert.Equal(t, Names{True: "ouais", False: "nan"}, names)
}

func TestRegistry_VariablesSolverAliases(t *testing.T) {
	reg := NewRegistry().WithDefaults(map[string]any{
		"en-GB": map[string]any{
			"true":  "${en.true}",
			"false": "${en.false}",
		},
	})
	require.NoError(t, reg.Load(context.Background()))

	names, err := reg.Names("en-GB")
	require.NoError(t, err)
	assert.Equal(t, Classic(), names)
}

func TestRegistry_CatalogSnapshotIsIsolated(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	snapshot := reg.Catalog()
	fr, ok := snapshot["fr"].(map[string]any)
	require.True(t, ok)
	fr["true"] = "mutated"

	names, err := reg.Names("fr")
	require.NoError(t, err)
	assert.Equal(t, "vrai", names.True, "mutating the snapshot must not affect the registry")
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Load(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				names, err := reg.Names("fi")
				assert.NoError(t, err)
				assert.Equal(t, "tosi", names.True)
			}
		}()
	}
	wg.Wait()
}

func TestReference(t *testing.T) {
	t.Run("zero value resolves classic", func(t *testing.T) {
		names, err := Reference{}.Names()
		require.NoError(t, err)
		assert.Equal(t, Classic(), names)
	})

	t.Run("bound reference resolves through the provider", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Load(context.Background()))

		ref := NewReference(reg, "de")
		names, err := ref.Names()
		require.NoError(t, err)
		assert.Equal(t, "wahr", names.True)
		assert.Equal(t, "de", ref.ID())
	})
}

func TestCatalogFileType(t *testing.T) {
	assert.Equal(t, FileTypeJSON, inferCatalogFiletype("locales.json"))
	assert.Equal(t, FileTypeYAML, inferCatalogFiletype("locales.yml"))
	assert.Equal(t, FileTypeYAML, inferCatalogFiletype("locales.YAML"))
	assert.Equal(t, FileTypeTOML, inferCatalogFiletype("locales.toml"))
	assert.Equal(t, FileTypeJSON, inferCatalogFiletype("locales"))
	assert.Equal(t, FileTypeTOML, inferCatalogFiletype("locales", FileTypeTOML))

	assert.NoError(t, FileTypeJSON.Valid())
	assert.Error(t, CatalogFileType("ini").Valid())
}
