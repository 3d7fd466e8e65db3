package seo

// PageType selects which schema.org block the head builder emits.
type PageType string

const (
	TypeWebsite PageType = "website"
	TypeArticle PageType = "article"
	TypeProduct PageType = "product"
	TypeService PageType = "service"
)

// PageMeta describes the SEO-relevant fields of one logical page.
type PageMeta struct {
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Image       string   `json:"image,omitempty"`
	Type        PageType `json:"type,omitempty"`
}
