package storeid

import "testing"

func TestResolveExtractsUUIDSuffix(t *testing.T) {
	got := Resolve("sharma-store-d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9")
	want := "d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestResolveSuffixWinsRegardlessOfPrefix(t *testing.T) {
	cases := []string{
		"d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9",
		"a-d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9",
		"my-awesome-kirana-shop-d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9",
	}
	for _, raw := range cases {
		if got := Resolve(raw); got != "d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9" {
			t.Fatalf("Resolve(%q) = %q", raw, got)
		}
	}
}

func TestResolveCaseInsensitiveMatch(t *testing.T) {
	got := Resolve("shop-D3105EF5-8FBA-4312-A0B2-93FD6D5F7AB9")
	if got != "D3105EF5-8FBA-4312-A0B2-93FD6D5F7AB9" {
		t.Fatalf("expected the matched substring unchanged, got %q", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	once := Resolve("fresh-fruits-d3105ef5-8fba-4312-a0b2-93fd6d5f7ab9")
	twice := Resolve(once)
	if once != twice {
		t.Fatalf("resolver not idempotent: %q vs %q", once, twice)
	}
}

func TestResolveMalformedUUIDLengthPassesThrough(t *testing.T) {
	// 36 chars, hyphenated, but not a valid uuid suffix
	raw := "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"
	if len(raw) != 36 {
		t.Fatalf("fixture must be 36 chars, got %d", len(raw))
	}
	if got := Resolve(raw); got != raw {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestResolveFallbackReturnsInput(t *testing.T) {
	if got := Resolve("just-a-slug"); got != "just-a-slug" {
		t.Fatalf("expected fallback passthrough, got %q", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Resolve("   "); got != "" {
		t.Fatalf("expected empty for whitespace, got %q", got)
	}
}
