package seo_test

import (
	"strings"
	"testing"

	"github.com/designdynasty/site/backend/internal/config"
	seomodel "github.com/designdynasty/site/backend/internal/model/seo"
	seoservice "github.com/designdynasty/site/backend/internal/service/seo"
)

func testBuilder() *seoservice.Builder {
	site := config.SiteConfig{
		BaseURL: "https://www.designdynasty.com",
		Name:    "Design Dynasty",
		Locale:  "en_US",
	}
	return seoservice.NewBuilder(site, seomodel.NewMemoryRegistry(seomodel.Seed()))
}

func TestApplyIsIdempotent(t *testing.T) {
	b := testBuilder()
	meta, _ := b.Resolve("/pricing")

	doc := seoservice.NewHeadDocument()
	b.Apply(doc, meta, "/pricing")
	firstLen := doc.Len()
	firstRender := doc.Render()

	b.Apply(doc, meta, "/pricing")

	if doc.Len() != firstLen {
		t.Fatalf("second apply grew the document: %d -> %d", firstLen, doc.Len())
	}
	if doc.Render() != firstRender {
		t.Fatal("second apply changed the rendered head")
	}
}

func TestApplyWritesFullTagSet(t *testing.T) {
	b := testBuilder()
	doc, ok := b.HeadFor("/services/web-development")
	if !ok {
		t.Fatal("expected head document")
	}

	checks := []struct {
		tag, keyAttr, keyValue, want string
	}{
		{"meta", "name", "description", "Custom websites and web apps using React, Node.js, and cloud. Secure, scalable, and fast."},
		{"link", "rel", "canonical", "https://www.designdynasty.com/services/web-development"},
		{"meta", "property", "og:url", "https://www.designdynasty.com/services/web-development"},
		{"meta", "property", "og:type", "website"},
		{"meta", "property", "og:site_name", "Design Dynasty"},
		{"meta", "property", "og:locale", "en_US"},
		{"meta", "name", "twitter:card", "summary_large_image"},
	}

	for _, c := range checks {
		got, found := doc.Lookup(c.tag, c.keyAttr, c.keyValue)
		if !found {
			t.Fatalf("missing %s[%s=%s]", c.tag, c.keyAttr, c.keyValue)
		}
		if got != c.want {
			t.Fatalf("%s[%s=%s]: got %q want %q", c.tag, c.keyAttr, c.keyValue, got, c.want)
		}
	}
}

func TestApplyArticleUsesArticleOGType(t *testing.T) {
	b := testBuilder()
	doc, _ := b.HeadFor("/blog")

	got, ok := doc.Lookup("meta", "property", "og:type")
	if !ok || got != "article" {
		t.Fatalf("expected og:type article for /blog, got %q", got)
	}
}

func TestBreadcrumbsTitleCaseSegments(t *testing.T) {
	b := testBuilder()
	doc, _ := b.HeadFor("/services/web-development")

	payload, ok := doc.Lookup("script", "id", "ldjson-breadcrumb")
	if !ok {
		t.Fatal("missing breadcrumb block")
	}
	if !strings.Contains(payload, `"Web Development"`) {
		t.Fatalf("expected title-cased segment name in %s", payload)
	}
	if !strings.Contains(payload, `"Home"`) {
		t.Fatalf("expected Home crumb in %s", payload)
	}
}

func TestBreadcrumbsDecodeEscapedSegments(t *testing.T) {
	b := testBuilder()
	doc, _ := b.HeadFor("/services/%C3%A9tudes-de-cas")

	payload, ok := doc.Lookup("script", "id", "ldjson-breadcrumb")
	if !ok {
		t.Fatal("missing breadcrumb block")
	}
	if !strings.Contains(payload, "Études De Cas") {
		t.Fatalf("expected decoded, title-cased segment name in %s", payload)
	}
}

func TestPageSchemaVariants(t *testing.T) {
	b := testBuilder()

	cases := []struct {
		path string
		want string
	}{
		{"/", `"@type":"WebPage"`},
		{"/blog", `"@type":"Article"`},
		{"/pricing", `"@type":"Product"`},
		{"/services", `"@type":"Service"`},
	}

	for _, c := range cases {
		doc, _ := b.HeadFor(c.path)
		payload, ok := doc.Lookup("script", "id", "ldjson-page")
		if !ok {
			t.Fatalf("missing page schema for %s", c.path)
		}
		if !strings.Contains(payload, c.want) {
			t.Fatalf("schema for %s should contain %s, got %s", c.path, c.want, payload)
		}
	}
}

func TestUnknownPathRendersFallbackHead(t *testing.T) {
	b := testBuilder()

	fallback, _ := b.HeadFor("/")
	unknown, ok := b.HeadFor("/this-does-not-exist")
	if !ok {
		t.Fatal("expected fallback head")
	}

	gotTitle := unknown.Title()
	if gotTitle != fallback.Title() {
		t.Fatalf("fallback title mismatch: %q vs %q", gotTitle, fallback.Title())
	}
	gotDesc, _ := unknown.Lookup("meta", "name", "description")
	wantDesc, _ := fallback.Lookup("meta", "name", "description")
	if gotDesc != wantDesc {
		t.Fatalf("fallback description mismatch: %q vs %q", gotDesc, wantDesc)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	doc := seoservice.NewHeadDocument()
	doc.SetTitle(`Design & "Dynasty"`)
	doc.UpsertMetaName("description", `a "quoted" <value>`)

	out := doc.Render()
	if strings.Contains(out, `"quoted"`) && !strings.Contains(out, "&#34;quoted&#34;") {
		t.Fatalf("attribute quotes not escaped: %s", out)
	}
	if strings.Contains(out, "<value>") {
		t.Fatalf("angle brackets not escaped: %s", out)
	}
}
