package categories

import "testing"

func TestLookupExactKey(t *testing.T) {
	cfg := Lookup("kirana")
	if cfg.Key != "kirana" {
		t.Fatalf("expected kirana config, got %q", cfg.Key)
	}
}

func TestLookupNormalizesSeparatorsAndCase(t *testing.T) {
	base := Lookup("kirana")
	for _, raw := range []string{"Kirana Store", "kirana-store", "KIRANA_STORE", "  kirana  "} {
		cfg := Lookup(raw)
		if cfg.Key != base.Key {
			t.Fatalf("Lookup(%q) resolved to %q, expected %q", raw, cfg.Key, base.Key)
		}
	}
}

func TestLookupSubstringContainment(t *testing.T) {
	// input contains a known key
	if cfg := Lookup("super bakery shop"); cfg.Key != "bakery" {
		t.Fatalf("expected bakery, got %q", cfg.Key)
	}
	// known key contains the input
	if cfg := Lookup("pharma"); cfg.Key != "pharmacy" {
		t.Fatalf("expected pharmacy, got %q", cfg.Key)
	}
}

func TestLookupMultipleMatchesResolveInTableOrder(t *testing.T) {
	// "dairy bakery" contains both keys; bakery comes first in the table
	for i := 0; i < 20; i++ {
		if cfg := Lookup("dairy bakery"); cfg.Key != "bakery" {
			t.Fatalf("expected bakery, got %q", cfg.Key)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	for _, raw := range []string{"", "nonexistent-category", "xyz"} {
		cfg := Lookup(raw)
		if cfg.Key != "other" {
			t.Fatalf("Lookup(%q) expected fallback, got %q", raw, cfg.Key)
		}
		if cfg.Label == "" || len(cfg.SampleProducts) == 0 {
			t.Fatalf("fallback config must be complete: %+v", cfg)
		}
	}
}

func TestKnownConfigsComplete(t *testing.T) {
	known := Known()
	if len(known) != 11 {
		t.Fatalf("expected 11 known categories, got %d", len(known))
	}
	for _, cfg := range known {
		if cfg.Key == "" || cfg.Label == "" || cfg.Icon == "" || cfg.PrimaryColor == "" {
			t.Fatalf("incomplete config: %+v", cfg)
		}
		if len(cfg.SampleProducts) == 0 {
			t.Fatalf("category %q has no sample products", cfg.Key)
		}
	}
}
