package categories

import "strings"

// Config describes how a store category is presented on the public
// catalogue and which terminology the dashboard uses for it. Pure data:
// rendering glyphs are resolved by the UI layer from Icon keys.
type Config struct {
	Key            string
	Label          string
	Icon           string
	PrimaryColor   string
	SecondaryColor string
	ProductNoun    string
	ProductNounPl  string
	Tagline        string
	SampleProducts []SampleProduct
}

// SampleProduct seeds a freshly onboarded store of this category.
type SampleProduct struct {
	Name  string
	Price string
	Unit  string
}

// Lookup returns the configuration for a raw category key. Matching is
// forgiving: input is lowercased and stripped of separators, then matched
// exactly, then by substring containment in either direction. Unknown or
// empty input resolves to the "other" fallback. Lookup never fails.
func Lookup(raw string) Config {
	normalized := normalize(raw)
	if normalized == "" {
		return fallback
	}

	if cfg, ok := byKey[normalized]; ok {
		return cfg
	}

	// walk the ordered table so inputs matching several keys always
	// resolve to the same category
	for _, cfg := range ordered {
		if strings.Contains(normalized, cfg.Key) || strings.Contains(cfg.Key, normalized) {
			return cfg
		}
	}

	return fallback
}

// Known returns the ordered list of known category configurations,
// fallback excluded.
func Known() []Config {
	out := make([]Config, len(ordered))
	copy(out, ordered)
	return out
}

func normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}
		return r
	}, lowered)
}
