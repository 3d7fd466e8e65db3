package seo

import (
	"strings"

	"github.com/designdynasty/site/backend/internal/config"
	seomodel "github.com/designdynasty/site/backend/internal/model/seo"
)

// Builder keeps head metadata consistent with the logical page a path
// denotes. It owns no network or storage; Apply only mutates the
// supplied document.
type Builder struct {
	site     config.SiteConfig
	registry seomodel.Registry
}

// NewBuilder wires the builder to the route metadata registry.
func NewBuilder(site config.SiteConfig, registry seomodel.Registry) *Builder {
	return &Builder{site: site, registry: registry}
}

// Resolve maps a path to its metadata entry per the registry rules.
func (b *Builder) Resolve(path string) (seomodel.PageMeta, bool) {
	return b.registry.Resolve(path)
}

// AbsoluteURL joins a site-relative path onto the configured base URL.
func (b *Builder) AbsoluteURL(path string) string {
	if path == "" {
		return b.site.BaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.site.BaseURL + path
}

// HeadFor resolves the path and applies its metadata to a fresh
// document. A lookup miss with no fallback entry is a silent no-op:
// absent tags degrade gracefully.
func (b *Builder) HeadFor(path string) (*HeadDocument, bool) {
	meta, ok := b.registry.Resolve(path)
	if !ok {
		return nil, false
	}
	doc := NewHeadDocument()
	b.Apply(doc, meta, path)
	return doc, true
}

// Apply upserts the full tag set for one page into the document: title,
// description, keywords, canonical, Open Graph, Twitter card, and the
// two JSON-LD blocks. Calling it twice with the same arguments leaves
// the document unchanged after the first call.
func (b *Builder) Apply(doc *HeadDocument, meta seomodel.PageMeta, path string) {
	doc.SetTitle(meta.Title)

	doc.UpsertMetaName("description", meta.Description)
	if len(meta.Keywords) > 0 {
		doc.UpsertMetaName("keywords", strings.Join(meta.Keywords, ", "))
	}

	canonical := b.AbsoluteURL(path)
	doc.UpsertLink("canonical", canonical)

	image := b.imageURL(meta)
	doc.UpsertMetaProperty("og:title", meta.Title)
	doc.UpsertMetaProperty("og:description", meta.Description)
	doc.UpsertMetaProperty("og:image", image)
	doc.UpsertMetaProperty("og:url", canonical)
	doc.UpsertMetaProperty("og:type", ogType(meta.Type))
	doc.UpsertMetaProperty("og:site_name", b.site.Name)
	doc.UpsertMetaProperty("og:locale", b.site.Locale)

	doc.UpsertMetaName("twitter:card", "summary_large_image")
	doc.UpsertMetaName("twitter:title", meta.Title)
	doc.UpsertMetaName("twitter:description", meta.Description)
	doc.UpsertMetaName("twitter:image", image)

	// Marshalling these maps cannot fail; errors are ignored on purpose.
	_ = doc.UpsertJSONLD("ldjson-breadcrumb", b.breadcrumbs(path))
	_ = doc.UpsertJSONLD("ldjson-page", b.pageSchema(meta, path))
}

func (b *Builder) imageURL(meta seomodel.PageMeta) string {
	image := meta.Image
	if image == "" {
		image = seomodel.DefaultImage
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return b.AbsoluteURL(image)
}

// ogType reduces the page type to the two values Open Graph accepts here.
func ogType(t seomodel.PageType) string {
	if t == seomodel.TypeArticle {
		return "article"
	}
	return "website"
}
