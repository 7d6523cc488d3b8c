package docs

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// Markdown wraps the markdown package with front matter support.
type Markdown struct {
	md     *md.Markdown
	writer io.Writer
	buffer *strings.Builder
}

// NewMarkdown creates a markdown builder writing to w.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{md: md.NewMarkdown(w), writer: w}
}

// NewMarkdownBuffer creates a markdown builder with an internal buffer.
func NewMarkdownBuffer() *Markdown {
	buffer := &strings.Builder{}
	return &Markdown{md: md.NewMarkdown(buffer), writer: buffer, buffer: buffer}
}

// String returns the buffered content.
func (m *Markdown) String() string {
	if m.buffer == nil {
		return ""
	}
	return m.buffer.String()
}

// FrontMatter is the YAML header of a generated page.
type FrontMatter struct {
	Title       string
	Description string
	Weight      int
}

// FrontMatterOption is a functional option for front matter.
type FrontMatterOption func(*FrontMatter)

// WithDescription adds a description to the front matter.
func WithDescription(desc string) FrontMatterOption {
	return func(fm *FrontMatter) {
		fm.Description = desc
	}
}

// HugoFrontMatter writes the page front matter. It must be called before
// any other content.
func (m *Markdown) HugoFrontMatter(title string, weight int, opts ...FrontMatterOption) *Markdown {
	fm := &FrontMatter{Title: title, Weight: weight}
	for _, opt := range opts {
		opt(fm)
	}

	fmt.Fprintln(m.writer, "---")
	fmt.Fprintf(m.writer, "title: %q\n", fm.Title)
	if fm.Description != "" {
		fmt.Fprintf(m.writer, "description: %q\n", fm.Description)
	}
	fmt.Fprintf(m.writer, "weight: %d\n", fm.Weight)
	fmt.Fprintln(m.writer, "---")
	fmt.Fprintln(m.writer)
	return m
}

// H1 creates a level 1 header.
func (m *Markdown) H1(text string) *Markdown {
	m.md.H1(text)
	return m
}

// H2 creates a level 2 header.
func (m *Markdown) H2(text string) *Markdown {
	m.md.H2(text)
	return m
}

// H3 creates a level 3 header.
func (m *Markdown) H3(text string) *Markdown {
	m.md.H3(text)
	return m
}

// PlainText adds plain text.
func (m *Markdown) PlainText(text string) *Markdown {
	m.md.PlainText(text)
	return m
}

// PlainTextf adds formatted plain text.
func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	m.md.PlainTextf(format, args...)
	return m
}

// LF adds a line feed.
func (m *Markdown) LF() *Markdown {
	m.md.LF()
	return m
}

// BulletList adds a bullet list.
func (m *Markdown) BulletList(items ...string) *Markdown {
	m.md.BulletList(items...)
	return m
}

// Table adds a table.
func (m *Markdown) Table(header []string, rows [][]string) *Markdown {
	m.md.Table(md.TableSet{Header: header, Rows: rows})
	return m
}

// Blockquote adds a blockquote.
func (m *Markdown) Blockquote(text string) *Markdown {
	m.md.Blockquote(text)
	return m
}

// HorizontalRule adds a horizontal rule.
func (m *Markdown) HorizontalRule() *Markdown {
	m.md.HorizontalRule()
	return m
}

// Footer adds the generated-by footer with an optional back link.
func (m *Markdown) Footer(upText, upURL string) *Markdown {
	m.HorizontalRule()
	parts := []string{}
	if upText != "" && upURL != "" {
		parts = append(parts, md.Link("← "+upText, upURL))
	}
	parts = append(parts, "Generated by AutoAtlas")
	m.PlainText(md.Italic(strings.Join(parts, " | ")))
	return m
}

// Build flushes the document to the writer.
func (m *Markdown) Build() error {
	return m.md.Build()
}
