package seo_test

import (
	"testing"

	"github.com/designdynasty/site/backend/internal/model/seo"
)

func TestResolveExactMatch(t *testing.T) {
	reg := seo.NewMemoryRegistry(seo.Seed())

	meta, ok := reg.Resolve("/pricing")
	if !ok {
		t.Fatal("expected a match for /pricing")
	}
	if meta.Path != "/pricing" {
		t.Fatalf("expected exact entry, got %s", meta.Path)
	}
}

func TestResolveLongestPrefixWins(t *testing.T) {
	reg := seo.NewMemoryRegistry(seo.Seed())

	meta, ok := reg.Resolve("/services/web-development/extra")
	if !ok {
		t.Fatal("expected a match")
	}
	if meta.Path != "/services/web-development" {
		t.Fatalf("expected longest prefix /services/web-development, got %s", meta.Path)
	}
}

func TestResolveShorterPrefix(t *testing.T) {
	reg := seo.NewMemoryRegistry(seo.Seed())

	meta, ok := reg.Resolve("/services/unlisted-offering")
	if !ok {
		t.Fatal("expected a match")
	}
	if meta.Path != "/services" {
		t.Fatalf("expected /services prefix entry, got %s", meta.Path)
	}
}

func TestResolveFallsBackToRoot(t *testing.T) {
	reg := seo.NewMemoryRegistry(seo.Seed())

	meta, ok := reg.Resolve("/this-does-not-exist")
	if !ok {
		t.Fatal("expected the fallback entry")
	}
	if meta.Path != "/" {
		t.Fatalf("expected fallback /, got %s", meta.Path)
	}

	root, _ := reg.Resolve("/")
	if meta.Title != root.Title {
		t.Fatalf("fallback should equal the root entry, got %q vs %q", meta.Title, root.Title)
	}
}

func TestResolveWithoutFallback(t *testing.T) {
	reg := seo.NewMemoryRegistry([]seo.PageMeta{
		{Path: "/only", Title: "Only"},
	})

	if _, ok := reg.Resolve("/other"); ok {
		t.Fatal("expected no match without a fallback entry")
	}
}

func TestSeedHasSingleRootEntry(t *testing.T) {
	roots := 0
	for _, m := range seo.Seed() {
		if m.Path == "/" {
			roots++
		}
	}
	if roots != 1 {
		t.Fatalf("expected exactly one fallback entry, got %d", roots)
	}
}
