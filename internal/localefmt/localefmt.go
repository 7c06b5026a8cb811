// Package localefmt canonicalizes locale identifiers to BCP-47 tags and
// picks the best match against a process-wide preference list, wrapping
// golang.org/x/text/language.
package localefmt

import (
	"sync"

	"golang.org/x/text/language"
)

// Format parses s as a locale identifier (accepting BCP-47 hyphenated tags
// as well as the underscore form common in gettext-style catalogs, e.g.
// "en_US") and returns its canonical, hyphenated BCP-47 tag.
func Format(s string) (tag string, ok bool) {
	t, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return t.String(), true
}

var (
	mu         sync.RWMutex
	preference = []language.Tag{language.AmericanEnglish}
)

// SetPreference replaces the process-wide locale preference list used by
// BestMatch. Calling it with no tags resets the preference to en-US.
func SetPreference(tags ...string) {
	mu.Lock()
	defer mu.Unlock()

	if len(tags) == 0 {
		preference = []language.Tag{language.AmericanEnglish}
		return
	}

	parsed := make([]language.Tag, 0, len(tags))
	for _, t := range tags {
		if tag, err := language.Parse(t); err == nil {
			parsed = append(parsed, tag)
		}
	}
	if len(parsed) > 0 {
		preference = parsed
	}
}

// BestMatch returns the candidate locale (from candidates, a set of BCP-47
// tags) that best matches the process-wide preference list. ok is false if
// candidates is empty or none of its entries parse as a locale.
func BestMatch(candidates []string) (best string, ok bool) {
	if len(candidates) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(candidates))
	index := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if t, err := language.Parse(c); err == nil {
			tags = append(tags, t)
			index = append(index, c)
		}
	}
	if len(tags) == 0 {
		return "", false
	}

	mu.RLock()
	pref := preference
	mu.RUnlock()

	matcher := language.NewMatcher(tags)
	_, idx, _ := matcher.Match(pref...)
	return index[idx], true
}
