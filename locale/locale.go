// Package locale supplies the true/false spellings used by locale-aware
// scanning. A Registry aggregates spellings from builtin defaults, struct
// catalogs, catalog files, and command-line flags, in that priority order,
// and serves cached lookups. Readers consume spellings through a Reference
// and treat them as read-only, ephemeral input.
package locale

// Names holds the spellings a locale uses for the two boolean values. The
// two names may differ in length and are not guaranteed to be disjoint
// prefixes of one another.
type Names struct {
	True  string `koanf:"true"`
	False string `koanf:"false"`
}

// Classic returns the locale-independent spellings.
func Classic() Names {
	return Names{True: "true", False: "false"}
}

// Provider resolves a locale identifier to its boolean spellings. A provider
// must return consistent spellings for a given identifier within a call; any
// caching behind that guarantee is the provider's own business.
type Provider interface {
	Names(id string) (Names, error)
}

// Reference pairs a provider with a locale identifier so readers can fetch
// spellings without knowing where they come from. The zero value resolves to
// the classic spellings.
type Reference struct {
	provider Provider
	id       string
}

// NewReference binds a provider and a locale identifier.
func NewReference(p Provider, id string) Reference {
	return Reference{provider: p, id: id}
}

// ID returns the locale identifier this reference resolves.
func (r Reference) ID() string {
	return r.id
}

// Names fetches the spellings for the referenced locale. An unbound
// reference yields the classic spellings so localized reads degrade to
// classic matching instead of failing.
func (r Reference) Names() (Names, error) {
	if r.provider == nil {
		return Classic(), nil
	}
	return r.provider.Names(r.id)
}
