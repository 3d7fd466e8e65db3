package seo

import (
	"sort"
	"strings"
)

// Registry resolves a request path to its page metadata.
type Registry interface {
	List() []PageMeta
	Resolve(path string) (PageMeta, bool)
}

// MemoryRegistry implements Registry over a static entry table. Entries
// are kept pre-sorted by descending path length so the prefix scan's
// first hit is the longest match.
type MemoryRegistry struct {
	byLength []PageMeta
	fallback *PageMeta
}

// NewMemoryRegistry builds a registry from the supplied entries. The
// entry with path "/" becomes the fallback for unmatched paths.
func NewMemoryRegistry(items []PageMeta) *MemoryRegistry {
	sorted := append([]PageMeta(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Path) > len(sorted[j].Path)
	})

	reg := &MemoryRegistry{byLength: sorted}
	for i := range sorted {
		if sorted[i].Path == "/" {
			reg.fallback = &sorted[i]
			break
		}
	}
	return reg
}

// List returns every registered entry.
func (r *MemoryRegistry) List() []PageMeta {
	return append([]PageMeta(nil), r.byLength...)
}

// Resolve matches exact path first, then the longest registered prefix,
// then the "/" fallback. The second return is false only when nothing
// matched and no fallback was registered.
func (r *MemoryRegistry) Resolve(path string) (PageMeta, bool) {
	if path == "" {
		path = "/"
	}

	for _, m := range r.byLength {
		if m.Path == path {
			return m, true
		}
	}

	for _, m := range r.byLength {
		if m.Path == "/" {
			continue
		}
		if strings.HasPrefix(path, m.Path) {
			return m, true
		}
	}

	if r.fallback != nil {
		return *r.fallback, true
	}
	return PageMeta{}, false
}
