// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package quickdoc prints the types and documentation of exported symbols of
// Go source files.
//
// Output is Markdown-flavored text with one bullet per symbol:
//
//	$ go tool quickdoc timeout.go
//	* `Timeout: time.Duration`
//
//	  Timeout is how long to wait before giving up.
//
//	  Deprecated Use Deadline instead.
package quickdoc

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Program is a loaded set of Go source files with everything needed to look
// up their types and documentation. All parts are built from the same file
// list.
type Program struct {
	// FileNames are the files the program was loaded from.
	FileNames []string
	// Config is the configuration the packages were loaded with.
	Config *packages.Config
	// Service answers documentation queries.
	Service *Service
	// Packages are the loaded packages, one per directory of FileNames.
	Packages []*packages.Package
	// Checker resolves the types of identifiers.
	Checker *Checker
}

// Load loads and type-checks fileNames. Files are loaded relative to the
// current working directory, and files of the same directory form one
// package.
func Load(ctx context.Context, fileNames []string) (*Program, error) {
	if len(fileNames) == 0 {
		return nil, errors.New("no files to load")
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     wd,
		Fset:    token.NewFileSet(),
	}

	var pkgs []*packages.Package
	for _, group := range groupByDir(fileNames) {
		loaded, err := packages.Load(cfg, group...)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, loaded...)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("loading %v: %w", fileNames, err)
	}

	return &Program{
		FileNames: fileNames,
		Config:    cfg,
		Service:   newService(pkgs),
		Packages:  pkgs,
		Checker:   &Checker{pkgs: pkgs},
	}, nil
}

// groupByDir splits fileNames by directory, keeping the order in which
// directories first appear.
func groupByDir(fileNames []string) [][]string {
	var (
		groups [][]string
		index  = make(map[string]int)
	)
	for _, name := range fileNames {
		dir := filepath.Dir(name)
		i, ok := index[dir]
		if !ok {
			i = len(groups)
			index[dir] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], name)
	}
	return groups
}

// Checker resolves identifiers of a Program to typed objects.
type Checker struct {
	pkgs []*packages.Package
}

// ObjectOf returns the object denoted by id, or nil if id does not belong to
// the program.
func (c *Checker) ObjectOf(id *ast.Ident) types.Object {
	for _, pkg := range c.pkgs {
		if pkg.TypesInfo == nil {
			continue
		}
		if obj := pkg.TypesInfo.ObjectOf(id); obj != nil {
			return obj
		}
	}
	return nil
}

// TypeString returns the type of obj as a string, qualifying names from
// other packages with their package name.
func (c *Checker) TypeString(obj types.Object) string {
	return types.TypeString(obj.Type(), func(other *types.Package) string {
		if other == obj.Pkg() {
			return ""
		}
		return other.Name()
	})
}
