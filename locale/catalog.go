package locale

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// CatalogFileType identifies the on-disk encoding of a locale catalog.
type CatalogFileType string

const (
	FileTypeYAML CatalogFileType = "yaml"
	FileTypeTOML CatalogFileType = "toml"
	FileTypeJSON CatalogFileType = "json"
)

func (c CatalogFileType) String() string {
	return string(c)
}

func (c CatalogFileType) Valid() error {
	switch c {
	case FileTypeJSON, FileTypeYAML, FileTypeTOML:
		return nil
	default:
		return errors.New("invalid catalog file type", errors.CategoryValidation).
			WithTextCode("INVALID_CATALOG_FILE_TYPE").
			WithMetadata(map[string]any{
				"file_type": string(c),
				"valid_types": []string{
					string(FileTypeJSON),
					string(FileTypeYAML),
					string(FileTypeTOML),
				},
			})
	}
}

func (c CatalogFileType) Parser() koanf.Parser {
	switch c {
	case FileTypeJSON:
		return json.Parser()
	case FileTypeTOML:
		return toml.Parser()
	case FileTypeYAML:
		return yaml.Parser()
	default:
		panic(fmt.Errorf("invalid catalog file type: %s", c))
	}
}

func inferCatalogFiletype(path string, defaultFileType ...CatalogFileType) CatalogFileType {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".toml":
		return FileTypeTOML
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	}

	if len(defaultFileType) > 0 {
		return defaultFileType[0]
	}

	return FileTypeJSON
}
