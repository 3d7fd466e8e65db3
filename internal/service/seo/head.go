package seo

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// HeadDocument models the mutable ordered collection of head elements.
// Every element is addressable by an identifying attribute (meta name or
// property, link rel, script id), and writes are upserts: update in place
// when the key exists, append otherwise. Applying the same page twice
// therefore yields an identical document.
type HeadDocument struct {
	title    string
	hasTitle bool
	elements []headElement
}

type headElement struct {
	tag      string // meta, link, script
	keyAttr  string // name, property, rel, id
	keyValue string
	valAttr  string // content, href; empty for script
	valValue string
	body     string // script payload
}

// NewHeadDocument returns an empty document.
func NewHeadDocument() *HeadDocument {
	return &HeadDocument{}
}

// SetTitle overwrites the document title.
func (d *HeadDocument) SetTitle(title string) {
	d.title = title
	d.hasTitle = true
}

// Title returns the current document title.
func (d *HeadDocument) Title() string {
	return d.title
}

// UpsertMetaName writes a <meta name=...> tag.
func (d *HeadDocument) UpsertMetaName(name, content string) {
	d.upsert(headElement{tag: "meta", keyAttr: "name", keyValue: name, valAttr: "content", valValue: content})
}

// UpsertMetaProperty writes a <meta property=...> tag.
func (d *HeadDocument) UpsertMetaProperty(property, content string) {
	d.upsert(headElement{tag: "meta", keyAttr: "property", keyValue: property, valAttr: "content", valValue: content})
}

// UpsertLink writes a <link rel=...> tag.
func (d *HeadDocument) UpsertLink(rel, href string) {
	d.upsert(headElement{tag: "link", keyAttr: "rel", keyValue: rel, valAttr: "href", valValue: href})
}

// UpsertJSONLD writes a <script type="application/ld+json"> block keyed
// by element id.
func (d *HeadDocument) UpsertJSONLD(id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal json-ld %s: %w", id, err)
	}
	d.upsert(headElement{tag: "script", keyAttr: "id", keyValue: id, body: string(payload)})
	return nil
}

func (d *HeadDocument) upsert(el headElement) {
	for i := range d.elements {
		if d.elements[i].tag == el.tag && d.elements[i].keyAttr == el.keyAttr && d.elements[i].keyValue == el.keyValue {
			d.elements[i] = el
			return
		}
	}
	d.elements = append(d.elements, el)
}

// Lookup returns the stored value for an identifying key, for tests and
// callers that inspect state rather than render it.
func (d *HeadDocument) Lookup(tag, keyAttr, keyValue string) (string, bool) {
	for i := range d.elements {
		el := &d.elements[i]
		if el.tag == tag && el.keyAttr == keyAttr && el.keyValue == keyValue {
			if el.tag == "script" {
				return el.body, true
			}
			return el.valValue, true
		}
	}
	return "", false
}

// Len reports the element count, excluding the title.
func (d *HeadDocument) Len() int {
	return len(d.elements)
}

// Render emits the head fragment as HTML, one element per line, in
// insertion order.
func (d *HeadDocument) Render() string {
	var b strings.Builder
	if d.hasTitle {
		fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(d.title))
	}
	for _, el := range d.elements {
		switch el.tag {
		case "script":
			// json.Marshal escapes "<" so the payload is safe inline.
			fmt.Fprintf(&b, "<script type=\"application/ld+json\" id=\"%s\">%s</script>\n",
				html.EscapeString(el.keyValue), el.body)
		default:
			fmt.Fprintf(&b, "<%s %s=\"%s\" %s=\"%s\">\n", el.tag,
				el.keyAttr, html.EscapeString(el.keyValue),
				el.valAttr, html.EscapeString(el.valValue))
		}
	}
	return b.String()
}
