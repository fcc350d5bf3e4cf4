// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Serve serves the generated pages for local development.

# Usage:

	$ go tool serve [flags] [dir]

Serve performs an initial build into dir (default "docs") and serves it. It
then watches the current directory for changes and rebuilds the pages.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
