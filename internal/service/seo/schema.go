package seo

import (
	"net/url"
	"strings"
	"unicode"

	seomodel "github.com/designdynasty/site/backend/internal/model/seo"
)

// breadcrumbs builds a schema.org BreadcrumbList from the path segments.
// Segment names drop hyphens and title-case each word, so
// "/services/web-development" yields "Services" > "Web Development".
func (b *Builder) breadcrumbs(path string) map[string]any {
	segments := splitSegments(path)

	items := make([]map[string]any, 0, len(segments)+1)
	items = append(items, map[string]any{
		"@type":    "ListItem",
		"position": 1,
		"name":     "Home",
		"item":     b.site.BaseURL + "/",
	})

	for i, seg := range segments {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 2,
			"name":     segmentName(seg),
			"item":     b.AbsoluteURL("/" + strings.Join(segments[:i+1], "/")),
		})
	}

	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// pageSchema builds the page-type-specific schema.org block.
func (b *Builder) pageSchema(meta seomodel.PageMeta, path string) map[string]any {
	url := b.AbsoluteURL(path)
	org := map[string]any{
		"@type": "Organization",
		"name":  b.site.Name,
	}

	schema := map[string]any{
		"@context":    "https://schema.org",
		"name":        meta.Title,
		"description": meta.Description,
		"url":         url,
		"image":       b.imageURL(meta),
	}

	switch meta.Type {
	case seomodel.TypeArticle:
		schema["@type"] = "Article"
		schema["headline"] = meta.Title
		schema["author"] = org
		schema["mainEntityOfPage"] = url
	case seomodel.TypeProduct:
		schema["@type"] = "Product"
		schema["brand"] = org
	case seomodel.TypeService:
		schema["@type"] = "Service"
		schema["provider"] = org
		schema["areaServed"] = map[string]any{
			"@type": "AdministrativeArea",
			"name":  "Global",
		}
	default:
		schema["@type"] = "WebPage"
		schema["isPartOf"] = map[string]any{
			"@type": "WebSite",
			"name":  b.site.Name,
			"url":   b.site.BaseURL,
		}
	}

	return schema
}

func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

func segmentName(seg string) string {
	if decoded, err := url.PathUnescape(seg); err == nil {
		seg = decoded
	}
	words := strings.Fields(strings.ReplaceAll(seg, "-", " "))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
