// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package docsite holds two documentation tools.
//
// The build and serve tools turn a directory of Markdown notes into HTML
// pages with highlighted code blocks, see [go.astrophena.name/docsite/internal/site].
//
// The quickdoc tool prints exported symbols of Go files with their types and
// doc comments, see [go.astrophena.name/docsite/internal/quickdoc].
package docsite
