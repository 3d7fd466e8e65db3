package catalog

// Store exposes site content retrieval for HTTP handlers.
type Store interface {
	Plans() []Plan
	Offerings() []Offering
	FindOffering(id string) (Offering, bool)
	Posts() []Post
	FindPost(slug string) (Post, bool)
}

// MemoryStore implements Store with static in-memory slices.
type MemoryStore struct {
	plans     []Plan
	offerings []Offering
	posts     []Post
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied content.
func NewMemoryStore(plans []Plan, offerings []Offering, posts []Post) *MemoryStore {
	return &MemoryStore{
		plans:     append([]Plan(nil), plans...),
		offerings: append([]Offering(nil), offerings...),
		posts:     append([]Post(nil), posts...),
	}
}

// Plans returns the pricing tiers.
func (s *MemoryStore) Plans() []Plan {
	return append([]Plan(nil), s.plans...)
}

// Offerings returns the service lines.
func (s *MemoryStore) Offerings() []Offering {
	return append([]Offering(nil), s.offerings...)
}

// FindOffering looks up a service line by identifier.
func (s *MemoryStore) FindOffering(id string) (Offering, bool) {
	for _, item := range s.offerings {
		if item.ID == id {
			return item, true
		}
	}
	return Offering{}, false
}

// Posts returns the blog teasers.
func (s *MemoryStore) Posts() []Post {
	return append([]Post(nil), s.posts...)
}

// FindPost looks up a blog teaser by slug.
func (s *MemoryStore) FindPost(slug string) (Post, bool) {
	for _, item := range s.posts {
		if item.Slug == slug {
			return item, true
		}
	}
	return Post{}, false
}
