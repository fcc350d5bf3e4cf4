// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Build converts Markdown files of the current directory to HTML pages.

# Usage

	$ go tool build [flags] [dir]

Readme.md becomes dir/index.html, and every Markdown file of an immediate
subdirectory becomes an HTML page in the same subdirectory of dir. If dir is
not provided, it defaults to docs in the current working directory.

Fenced code blocks are highlighted according to the language of their info
string.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
