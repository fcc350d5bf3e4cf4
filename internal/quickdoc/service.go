// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package quickdoc

import (
	"go/ast"
	"go/doc/comment"
	"go/token"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// QuickInfo is the documentation of a declaration.
type QuickInfo struct {
	// Documentation is the doc comment as plain text, without tags.
	// Paragraphs are separated by blank lines.
	Documentation string
	// Tags are the tag paragraphs of the doc comment, in order.
	Tags []Tag
}

// Tag is a doc comment paragraph with a special meaning, such as a
// deprecation notice ("Deprecated: ...") or a note ("BUG(who): ...").
type Tag struct {
	// Name is the lower-case tag name, for example "deprecated".
	Name string
	// Text is the body of the tag.
	Text string
}

// String returns the tag as "<Name> <Text>" with a capitalized name.
func (t Tag) String() string {
	return cases.Title(language.Und, cases.NoLower).String(t.Name) + " " + t.Text
}

// Service looks up documentation by source position.
type Service struct {
	files map[string]*ast.File
}

func newService(pkgs []*packages.Package) *Service {
	s := &Service{files: make(map[string]*ast.File)}
	for _, pkg := range pkgs {
		for i, f := range pkg.Syntax {
			s.files[pkg.CompiledGoFiles[i]] = f
		}
	}
	return s
}

// QuickInfoAt returns the documentation of the declaration enclosing pos in
// the file fileName. It returns the zero QuickInfo if the file is unknown or
// the declaration has no doc comment.
func (s *Service) QuickInfoAt(fileName string, pos token.Pos) QuickInfo {
	f, ok := s.files[fileName]
	if !ok {
		return QuickInfo{}
	}
	path, _ := astutil.PathEnclosingInterval(f, pos, pos)
	return parseDoc(docOf(path))
}

// docOf returns the doc comment that applies to the innermost node of path.
func docOf(path []ast.Node) *ast.CommentGroup {
	for _, n := range path {
		switch n := n.(type) {
		case *ast.ValueSpec:
			if n.Doc != nil {
				return n.Doc
			}
		case *ast.TypeSpec:
			if n.Doc != nil {
				return n.Doc
			}
		case *ast.GenDecl:
			// The comment of a grouped declaration documents the group.
			if n.Lparen.IsValid() {
				return nil
			}
			return n.Doc
		case *ast.FuncDecl:
			return n.Doc
		case *ast.File:
			return nil
		}
	}
	return nil
}

var textPrinter = &comment.Printer{TextWidth: -1}

func parseDoc(cg *ast.CommentGroup) QuickInfo {
	var info QuickInfo
	if cg == nil {
		return info
	}

	var (
		p     comment.Parser
		paras []string
	)
	d := p.Parse(cg.Text())
	for _, block := range d.Content {
		text := strings.TrimSuffix(string(textPrinter.Text(&comment.Doc{Content: []comment.Block{block}})), "\n")
		if _, ok := block.(*comment.Paragraph); ok {
			if tag, ok := parseTag(text); ok {
				info.Tags = append(info.Tags, tag)
				continue
			}
		}
		paras = append(paras, text)
	}
	info.Documentation = strings.Join(paras, "\n\n")
	return info
}

// noteMarker matches notes as recognized by go/doc.
var noteMarker = regexp.MustCompile(`^([A-Z][A-Z]+)\(([^)]+)\):?\s*`)

func parseTag(text string) (Tag, bool) {
	if body, ok := strings.CutPrefix(text, "Deprecated: "); ok {
		return Tag{Name: "deprecated", Text: body}, true
	}
	if m := noteMarker.FindStringSubmatch(text); m != nil {
		return Tag{
			Name: strings.ToLower(m[1]),
			Text: "(" + m[2] + ") " + text[len(m[0]):],
		}, true
	}
	return Tag{}, false
}
