package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const stylesheet = `body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: .3em; }
h2 { margin-top: 2em; }
.gallery img { margin: 0 1em 1em 0; vertical-align: top; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f2f2f2; }
`

// Section is one numbered block of the report body.
type Section interface {
	Heading() string
	content() []*html.Node
}

// ListSection renders names as a bullet list, or "None" when empty.
type ListSection struct {
	Title string
	Items []string
}

func (s ListSection) Heading() string { return s.Title }

func (s ListSection) content() []*html.Node {
	if len(s.Items) == 0 {
		return []*html.Node{none()}
	}
	ul := element(atom.Ul)
	for _, it := range s.Items {
		li := element(atom.Li)
		li.AppendChild(text(it))
		ul.AppendChild(li)
	}
	return []*html.Node{ul}
}

// Image is a gallery entry; Src is relative to the HTML file.
type Image struct {
	Src string
	Alt string
}

// GallerySection renders images at a fixed display width.
type GallerySection struct {
	Title  string
	Images []Image
	Width  int
}

func (s GallerySection) Heading() string { return s.Title }

func (s GallerySection) content() []*html.Node {
	if len(s.Images) == 0 {
		return []*html.Node{none()}
	}
	div := element(atom.Div, attr("class", "gallery"))
	for _, img := range s.Images {
		div.AppendChild(element(atom.Img,
			attr("src", img.Src),
			attr("alt", img.Alt),
			attr("width", strconv.Itoa(s.Width)),
		))
		div.AppendChild(text("\n"))
	}
	return []*html.Node{div}
}

// TableSection renders a header row and body rows.
type TableSection struct {
	Title  string
	Header []string
	Rows   [][]string
}

func (s TableSection) Heading() string { return s.Title }

func (s TableSection) content() []*html.Node {
	if len(s.Rows) == 0 {
		return []*html.Node{none()}
	}
	table := element(atom.Table)
	thead := element(atom.Thead)
	thead.AppendChild(row(atom.Th, s.Header))
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	for _, r := range s.Rows {
		tbody.AppendChild(row(atom.Td, r))
	}
	table.AppendChild(tbody)
	return []*html.Node{table}
}

// Document is a static HTML page made of numbered sections.
type Document struct {
	Title    string
	sections []Section
}

// NewDocument returns an empty document with the given page title.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// Add appends a section; sections are numbered in insertion order.
func (d *Document) Add(s Section) *Document {
	d.sections = append(d.sections, s)
	return d
}

// Sections returns the sections in render order.
func (d *Document) Sections() []Section { return d.sections }

// Render writes the whole page.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.tree())
}

// Bytes renders the page into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) tree() *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(text("\n"))

	root := element(atom.Html, attr("lang", "en"))
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	title := element(atom.Title)
	title.AppendChild(text(d.Title))
	head.AppendChild(title)
	style := element(atom.Style)
	style.AppendChild(text(stylesheet))
	head.AppendChild(style)
	root.AppendChild(head)
	root.AppendChild(text("\n"))

	body := element(atom.Body)
	root.AppendChild(body)
	body.AppendChild(text("\n"))
	h1 := element(atom.H1)
	h1.AppendChild(text(d.Title))
	appendBlock(body, h1)

	for i, s := range d.sections {
		h2 := element(atom.H2)
		h2.AppendChild(text(fmt.Sprintf("%d. %s", i+1, s.Heading())))
		appendBlock(body, h2)
		for _, n := range s.content() {
			appendBlock(body, n)
		}
	}
	root.AppendChild(text("\n"))
	return doc
}

func appendBlock(parent, n *html.Node) {
	parent.AppendChild(n)
	parent.AppendChild(text("\n"))
}

func row(cell atom.Atom, values []string) *html.Node {
	tr := element(atom.Tr)
	for _, v := range values {
		c := element(cell)
		c.AppendChild(text(v))
		tr.AppendChild(c)
	}
	return tr
}

func none() *html.Node {
	p := element(atom.P)
	p.AppendChild(text("None"))
	return p
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
