package locale

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
)

var namesType = reflect.TypeOf(Names{})

// namesDecodeHook normalises catalog values destined for Names so catalogs
// can supply either a {true:..., false:...} map or the "true|false" string
// shorthand.
func namesDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != namesType {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		parts := strings.SplitN(s, "|", 2)
		if len(parts) != 2 {
			return nil, errors.New("catalog entry shorthand must be \"true|false\"", errors.CategoryValidation).
				WithTextCode("INVALID_CATALOG_ENTRY").
				WithMetadata(map[string]any{
					"value": s,
				})
		}
		return Names{
			True:  strings.TrimSpace(parts[0]),
			False: strings.TrimSpace(parts[1]),
		}, nil
	}
}

// decodeNames decodes one catalog subtree into Names.
func decodeNames(raw any) (Names, error) {
	var names Names
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "koanf",
		WeaklyTypedInput: true,
		Result:           &names,
		DecodeHook:       namesDecodeHook(),
	})
	if err != nil {
		return Names{}, errors.Wrap(err, errors.CategoryOperation, "failed to build catalog decoder").
			WithTextCode("CATALOG_DECODER_FAILED")
	}
	if err := decoder.Decode(raw); err != nil {
		return Names{}, errors.Wrap(err, errors.CategoryValidation, "failed to decode catalog entry").
			WithTextCode("INVALID_CATALOG_ENTRY")
	}
	return names, nil
}
