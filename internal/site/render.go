// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package site

import (
	"strings"

	"rsc.io/markdown"
)

// Stylesheets linked from every page.
const (
	highlightCSS = "https://unpkg.com/highlight.js/styles/github.css"
	textCSS      = "https://unpkg.com/latex.css/style.min.css"
)

func newParser() *markdown.Parser {
	return &markdown.Parser{
		HeadingID:          true,
		Strikethrough:      true,
		TaskList:           true,
		AutoLinkText:       true,
		AutoLinkAssumeHTTP: true,
		Table:              true,
		Emoji:              true,
		SmartDot:           true,
		SmartDash:          true,
		SmartQuote:         true,
		Footnote:           true,
	}
}

// Render converts Markdown source to a complete HTML page, highlighting fenced
// code blocks with the default style.
func Render(md string) (string, error) {
	c := &Config{}
	c.setDefaults()
	return newBuildContext(c).render(md)
}

func (b *buildContext) render(md string) (string, error) {
	doc := b.md.Parse(md)
	r := &codeReplacer{b: b, seen: make(map[*markdown.Footnote]bool)}
	if err := r.replace(doc.Blocks); err != nil {
		return "", err
	}
	return wrapPage(markdown.ToHTML(doc)), nil
}

// codeReplacer walks blocks in document order and replaces every code block
// with an HTML block holding its highlighted source. The replacement takes
// the code block's index, so the walk never revisits it.
//
// Footnote bodies are not part of the document's blocks; they are reached
// through the links that reference them and walked once each.
type codeReplacer struct {
	b    *buildContext
	seen map[*markdown.Footnote]bool
}

func (r *codeReplacer) replace(blocks []markdown.Block) error {
	for i, block := range blocks {
		var err error
		switch block := block.(type) {
		case *markdown.CodeBlock:
			var html *markdown.HTMLBlock
			if html, err = r.b.highlightBlock(block); err == nil {
				blocks[i] = html
			}
		case *markdown.Quote:
			err = r.replace(block.Blocks)
		case *markdown.List:
			err = r.replace(block.Items)
		case *markdown.Item:
			err = r.replace(block.Blocks)
		case *markdown.Paragraph:
			err = r.text(block.Text)
		case *markdown.Heading:
			err = r.text(block.Text)
		case *markdown.Table:
			rows := append([][]*markdown.Text{block.Header}, block.Rows...)
			for _, row := range rows {
				for _, cell := range row {
					if err = r.text(cell); err != nil {
						return err
					}
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *codeReplacer) text(t *markdown.Text) error {
	if t == nil {
		return nil
	}
	return r.inlines(t.Inline)
}

func (r *codeReplacer) inlines(in markdown.Inlines) error {
	for _, x := range in {
		var err error
		switch x := x.(type) {
		case *markdown.FootnoteLink:
			if fn := x.Footnote; fn != nil && !r.seen[fn] {
				r.seen[fn] = true
				err = r.replace(fn.Blocks)
			}
		case *markdown.Emph:
			err = r.inlines(x.Inner)
		case *markdown.Strong:
			err = r.inlines(x.Inner)
		case *markdown.Del:
			err = r.inlines(x.Inner)
		case *markdown.Link:
			err = r.inlines(x.Inner)
		case markdown.Inlines:
			err = r.inlines(x)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *buildContext) highlightBlock(block *markdown.CodeBlock) (*markdown.HTMLBlock, error) {
	var src string
	if len(block.Text) > 0 {
		src = strings.Join(block.Text, "\n") + "\n"
	}
	html, err := highlight(fenceLang(block.Info), src, b.c.Style)
	if err != nil {
		return nil, err
	}
	hb := &markdown.HTMLBlock{Position: block.Position}
	if html != "" {
		hb.Text = strings.Split(strings.TrimSuffix(html, "\n"), "\n")
	}
	return hb, nil
}

// fenceLang returns the language named by a fence info string.
func fenceLang(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func wrapPage(body string) string {
	var sb strings.Builder
	sb.WriteString("<html>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(`    <link rel="stylesheet" href="` + highlightCSS + `" />` + "\n")
	sb.WriteString(`    <link rel="stylesheet" href="` + textCSS + `" />` + "\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString(body)
	sb.WriteString("  </body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}
