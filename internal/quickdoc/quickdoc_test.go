// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package quickdoc

import (
	"bytes"
	"flag"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/base/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func TestPrint(t *testing.T) {
	cases := map[string]struct {
		files  []string
		golden []string
	}{
		"exports": {
			files:  []string{"testdata/exports/exports.go", "testdata/exports/generated.go"},
			golden: []string{"testdata/exports.golden"},
		},
		"two directories": {
			files:  []string{"testdata/exports/exports.go", "testdata/other/other.go"},
			golden: []string{"testdata/exports.golden", "testdata/other.golden"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := Load(t.Context(), tc.files)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, p.FileNames, tc.files)
			testutil.AssertEqual(t, len(p.Packages), len(tc.golden))

			var got bytes.Buffer
			if err := Print(&got, p); err != nil {
				t.Fatal(err)
			}

			if *update && len(tc.golden) == 1 {
				if err := os.WriteFile(tc.golden[0], got.Bytes(), 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}
			var want []byte
			for _, g := range tc.golden {
				b, err := os.ReadFile(g)
				if err != nil {
					t.Fatal(err)
				}
				want = append(want, b...)
			}
			testutil.AssertEqual(t, got.String(), string(want))
		})
	}
}

// The example in the package doc must match what Print produces.
func TestPackageDocExample(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "quickdoc.go", nil, parser.ParseComments|parser.PackageClauseOnly)
	if err != nil {
		t.Fatal(err)
	}

	var (
		example []string
		inCode  bool
	)
	for line := range strings.Lines(f.Doc.Text()) {
		line = strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(line, "\t$ ") {
			inCode = true
			continue
		}
		if !inCode {
			continue
		}
		if line != "" && !strings.HasPrefix(line, "\t") {
			break
		}
		example = append(example, strings.TrimPrefix(line, "\t"))
	}
	if len(example) == 0 {
		t.Fatal("no example found in package doc")
	}

	golden, err := os.ReadFile("testdata/exports.golden")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join(example, "\n") + "\n"
	if !strings.HasPrefix(string(golden), want) {
		t.Fatalf("package doc example:\n%s\ndoes not match the start of testdata/exports.golden:\n%s", want, golden)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string][]string{
		"no files":     nil,
		"type error":   {"testdata/broken/broken.go"},
		"missing file": {"testdata/nope/nope.go"},
	}
	for name, files := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(t.Context(), files); err == nil {
				t.Fatalf("Load(%v) succeeded, want error", files)
			}
		})
	}
}

func TestGroupByDir(t *testing.T) {
	got := groupByDir([]string{
		"b/one.go",
		"a/two.go",
		"b/three.go",
		filepath.Join("c", "four.go"),
	})
	testutil.AssertEqual(t, got, [][]string{
		{"b/one.go", "b/three.go"},
		{"a/two.go"},
		{filepath.Join("c", "four.go")},
	})
}

const serviceSrc = `package p

// A is documented.
//
// Deprecated: Use B.
var A = 1

var B = 2

// Group doc.
var (
	// C is documented inside a group.
	C = 3
	D = 4
)

// E is a function.
//
// NOTE(alice): Subject to change.
func E() {}
`

func TestQuickInfoAt(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", serviceSrc, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	s := &Service{files: map[string]*ast.File{"p.go": f}}

	idents := make(map[string]*ast.Ident)
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ValueSpec:
			for _, id := range n.Names {
				idents[id.Name] = id
			}
		case *ast.FuncDecl:
			idents[n.Name.Name] = n.Name
		}
		return true
	})

	cases := map[string]struct {
		name string
		want QuickInfo
	}{
		"with tag": {
			name: "A",
			want: QuickInfo{
				Documentation: "A is documented.",
				Tags:          []Tag{{Name: "deprecated", Text: "Use B."}},
			},
		},
		"undocumented": {
			name: "B",
		},
		"in group": {
			name: "C",
			want: QuickInfo{Documentation: "C is documented inside a group."},
		},
		"group doc is not inherited": {
			name: "D",
		},
		"function with note": {
			name: "E",
			want: QuickInfo{
				Documentation: "E is a function.",
				Tags:          []Tag{{Name: "note", Text: "(alice) Subject to change."}},
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			id, ok := idents[tc.name]
			if !ok {
				t.Fatalf("identifier %s not found", tc.name)
			}
			testutil.AssertEqual(t, s.QuickInfoAt("p.go", id.Pos()), tc.want)
		})
	}

	testutil.AssertEqual(t, s.QuickInfoAt("unknown.go", idents["A"].Pos()), QuickInfo{})
}

func TestParseDoc(t *testing.T) {
	cg := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// First paragraph"},
		{Text: "// spans two lines."},
		{Text: "//"},
		{Text: "// Second paragraph."},
		{Text: "//"},
		{Text: "// Deprecated: Gone."},
	}}
	testutil.AssertEqual(t, parseDoc(cg), QuickInfo{
		Documentation: "First paragraph spans two lines.\n\nSecond paragraph.",
		Tags:          []Tag{{Name: "deprecated", Text: "Gone."}},
	})
	testutil.AssertEqual(t, parseDoc(nil), QuickInfo{})
}

func TestTagString(t *testing.T) {
	cases := map[string]struct {
		tag  Tag
		want string
	}{
		"deprecated": {Tag{Name: "deprecated", Text: "Use X."}, "Deprecated Use X."},
		"note":       {Tag{Name: "bug", Text: "(who) Broken."}, "Bug (who) Broken."},
		"empty body": {Tag{Name: "todo"}, "Todo "},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.tag.String(), tc.want)
		})
	}
}

func TestSymbolWriteTo(t *testing.T) {
	cases := map[string]struct {
		sym  Symbol
		want string
	}{
		"bare": {
			sym:  Symbol{Name: "B", Type: "int"},
			want: "* `B: int`\n\n",
		},
		"documented": {
			sym: Symbol{Name: "A", Type: "string", Info: QuickInfo{
				Documentation: "One.\n\nTwo.",
				Tags:          []Tag{{Name: "deprecated", Text: "Use B."}},
			}},
			want: "* `A: string`\n\n  One.\n\n  Two.\n\n  Deprecated Use B.\n\n",
		},
		"blank documentation": {
			sym:  Symbol{Name: "C", Type: "bool", Info: QuickInfo{Documentation: " \n"}},
			want: "* `C: bool`\n\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.sym.writeTo(&buf)
			testutil.AssertEqual(t, buf.String(), tc.want)
		})
	}
}
