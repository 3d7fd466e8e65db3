package catalog

// Plan is one pricing tier shown on the pricing page.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	Period     string   `json:"period"`
	Features   []string `json:"features"`
	IsPopular  bool     `json:"isPopular"`
	ButtonText string   `json:"buttonText"`
}

// Offering is one service line with its own landing page.
type Offering struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// Post is one blog article teaser.
type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
}
