package storage

import "github.com/halimath/jwx/internal/localefmt"

// GetLocalized reads a localizable field identified by base. If v contains
// one or more keys of the form "base#<locale>", the one whose locale best
// matches the process-wide preference set by localefmt.SetPreference is
// used; otherwise the plain base key is read. Coercion into T follows the
// same rules as TypedGet.
func GetLocalized[T any](v Value, base string) (T, bool) {
	candidates := localizedCandidates(v, base)
	if len(candidates) > 0 {
		locales := make([]string, 0, len(candidates))
		for locale := range candidates {
			locales = append(locales, locale)
		}

		if best, ok := localefmt.BestMatch(locales); ok {
			if key, ok := candidates[best]; ok {
				if t, ok := TypedGet[T](v, key); ok {
					return t, true
				}
			}
		}
	}

	return TypedGet[T](v, base)
}

// SetLocalized writes a localizable field under its plain base key,
// per spec: writes never carry a locale suffix.
func SetLocalized[T any](v Value, base string, value *T) {
	TypedSet(v, base, value)
}
