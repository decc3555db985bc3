// Package dom is a small in-memory HTML document model. It covers the
// operations the client injector performs on the host page: element
// creation, attribute and inline-style updates, lookups and rendering.
//
// A Document is not safe for concurrent use, like the page it stands in for.
package dom

import (
	"html"
	"sort"
	"strings"
)

// Element is a node in the document tree.
type Element struct {
	Tag      string
	attrs    map[string]string
	style    map[string]string
	children []*Element
	parent   *Element
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		Tag:   strings.ToLower(tag),
		attrs: map[string]string{},
		style: map[string]string{},
	}
}

// SetAttribute sets an attribute, replacing any previous value.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[strings.ToLower(name)] = value
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// ID returns the id attribute.
func (e *Element) ID() string { return e.attrs["id"] }

// SetStyle sets one inline style property (CSS name, e.g. "z-index").
func (e *Element) SetStyle(property, value string) {
	e.style[property] = value
}

// Style returns an inline style property.
func (e *Element) Style(property string) string { return e.style[property] }

// AppendChild attaches child as the last child of e, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Clear removes every child, like assigning an empty innerHTML.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element { return e.parent }

// walk visits e and its descendants depth-first until fn returns false.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Document is a page with a head and a body.
type Document struct {
	root *Element
	Head *Element
	Body *Element
}

// NewDocument returns an empty page.
func NewDocument() *Document {
	root := NewElement("html")
	head := NewElement("head")
	body := NewElement("body")
	root.AppendChild(head)
	root.AppendChild(body)
	return &Document{root: root, Head: head, Body: body}
}

// CreateElement creates a detached element owned by the caller.
func (d *Document) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// GetElementByID returns the first attached element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	return d.Find(func(e *Element) bool { return e.ID() == id })
}

// Find returns the first attached element matching match in document order.
func (d *Document) Find(match func(*Element) bool) *Element {
	var found *Element
	d.root.walk(func(e *Element) bool {
		if match(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// FindAll returns every attached element matching match in document order.
func (d *Document) FindAll(match func(*Element) bool) []*Element {
	var out []*Element
	d.root.walk(func(e *Element) bool {
		if match(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// ScriptWithSrc returns the first <script> whose src contains substr,
// matching the selector script[src*="substr"].
func (d *Document) ScriptWithSrc(substr string) *Element {
	return d.Find(func(e *Element) bool {
		if e.Tag != "script" {
			return false
		}
		src, ok := e.Attribute("src")
		return ok && strings.Contains(src, substr)
	})
}

// String renders the document as HTML. Attributes and style properties
// are written in sorted order so output is stable.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>")
	render(&b, d.root)
	return b.String()
}

// String renders the element and its descendants as HTML.
func (e *Element) String() string {
	var b strings.Builder
	render(&b, e)
	return b.String()
}

func render(b *strings.Builder, e *Element) {
	b.WriteString("<")
	b.WriteString(e.Tag)

	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		b.WriteString(" ")
		b.WriteString(k)
		if v := e.attrs[k]; v != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(v))
			b.WriteString(`"`)
		}
	}

	if len(e.style) > 0 {
		props := make([]string, 0, len(e.style))
		for k := range e.style {
			props = append(props, k)
		}
		sort.Strings(props)
		decls := make([]string, 0, len(props))
		for _, k := range props {
			decls = append(decls, k+":"+e.style[k])
		}
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(strings.Join(decls, ";")))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	for _, c := range e.children {
		render(b, c)
	}

	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">")
}
