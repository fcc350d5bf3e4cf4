// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"fmt"
	"os"

	"go.astrophena.name/base/unwrap"

	"golang.org/x/mod/modfile"
)

// ModulePath is the path of the module the tools work on.
const ModulePath = "go.astrophena.name/docsite"

// EnsureRoot checks that the current working directory is at the repository
// root and panics if it doesn't.
func EnsureRoot() {
	b, err := os.ReadFile("go.mod")
	if os.IsNotExist(err) {
		panic("Are you at repo root?")
	}
	path := modfile.ModulePath(unwrap.Value(b, err))
	if path != ModulePath {
		panic(fmt.Sprintf("Are you at repo root? go.mod declares %q, want %q.", path, ModulePath))
	}
}
