// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package quickdoc

import (
	"bufio"
	"fmt"
	"go/ast"
	"io"
	"strings"
)

// Symbol is an exported name with its type and documentation.
type Symbol struct {
	Name string
	Type string
	Info QuickInfo
}

// Print writes the exported symbols of every non-generated source file of p
// to w.
func Print(w io.Writer, p *Program) error {
	bw := bufio.NewWriter(w)
	for _, pkg := range p.Packages {
		for i, f := range pkg.Syntax {
			if ast.IsGenerated(f) {
				continue
			}
			v := &visitor{
				p:        p,
				fileName: pkg.CompiledGoFiles[i],
				emit:     func(s Symbol) { s.writeTo(bw) },
			}
			for _, decl := range f.Decls {
				v.visit(decl)
			}
		}
	}
	return bw.Flush()
}

type visitor struct {
	p        *Program
	fileName string
	emit     func(Symbol)
}

func (v *visitor) visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.GenDecl:
		for _, spec := range n.Specs {
			v.visit(spec)
		}
	case *ast.ValueSpec:
		for _, name := range n.Names {
			v.export(name)
		}
	case *ast.FuncDecl:
		if n.Recv == nil {
			v.export(n.Name)
		}
	case *ast.TypeSpec:
		// Types are known, but not documented.
	default:
	}
}

func (v *visitor) export(id *ast.Ident) {
	if !id.IsExported() {
		return
	}
	obj := v.p.Checker.ObjectOf(id)
	if obj == nil {
		return
	}
	v.emit(Symbol{
		Name: id.Name,
		Type: v.p.Checker.TypeString(obj),
		Info: v.p.Service.QuickInfoAt(v.fileName, id.Pos()),
	})
}

func (s Symbol) writeTo(w io.Writer) {
	fmt.Fprintf(w, "* `%s: %s`\n\n", s.Name, s.Type)
	paras := []string{indent(s.Info.Documentation)}
	for _, tag := range s.Info.Tags {
		paras = append(paras, indent(tag.String()))
	}
	for _, para := range paras {
		if strings.TrimSpace(para) == "" {
			continue
		}
		fmt.Fprint(w, para, "\n\n")
	}
}

// indent prefixes every non-empty line of s with two spaces.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
