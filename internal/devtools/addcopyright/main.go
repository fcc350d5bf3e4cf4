// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Addcopyright adds copyright header to each Go file.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/docsite/internal/devtools"
)

const (
	header = "// ©"
	tmpl   = `// © %d Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

`
)

func main() { cli.Main(new(app)) }

type app struct {
	check bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Report files without a header instead of adding it.")
}

func (a *app) Run(ctx context.Context) error {
	devtools.EnsureRoot()

	var missing []string
	if err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(content, []byte(header)) {
			return nil // Already has a copyright header
		}
		if a.check {
			missing = append(missing, path)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, tmpl, info.ModTime().Year())
		buf.Write(content)
		return os.WriteFile(path, buf.Bytes(), 0o644)
	}); err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("files without copyright header:\n\t%s", strings.Join(missing, "\n\t"))
	}
	return nil
}

// skipDir reports whether a directory holds test fixtures or is ignored by
// the go tool.
func skipDir(name string) bool {
	return name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
