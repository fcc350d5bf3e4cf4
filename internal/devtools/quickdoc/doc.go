// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Quickdoc prints exported symbols of Go files with their types and
documentation.

# Usage

	$ go tool quickdoc file.go...

For every exported variable, constant and function declared in the files,
quickdoc prints a Markdown bullet with its name and type, followed by its doc
comment. Deprecation notices and notes like BUG(who) are printed as separate
paragraphs. Types, methods and generated files are skipped.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
