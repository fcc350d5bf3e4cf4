// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package site turns a tree of Markdown files into HTML pages.

# Directory Structure

The source directory is expected to look like this:

	Readme.md  Becomes the index.html page of the generated site.
	<topic>/   Every immediate subdirectory that contains Markdown files
	           becomes a subdirectory of the generated site with one HTML
	           page per Markdown file. Nested directories are not scanned.

The generated site is placed into the docs directory by default.

# Code Blocks

Fenced code blocks with a language in their info string are highlighted and
wrapped in a <pre> element. Code blocks without a language are copied to the
page as is.
*/
package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/logger"

	"rsc.io/markdown"
)

// Config represents a build configuration.
type Config struct {
	// Src is the directory where to read files from. If empty, uses the current
	// directory.
	Src string
	// Dst is the directory where to write files. If empty, uses the docs
	// directory.
	Dst string
	// Style is the name of the syntax highlighting style. If empty, uses
	// "github".
	Style string
	// Minify determines if generated pages should be minified.
	Minify bool
	// Feed determines if an Atom feed of generated pages should be written to
	// feed.xml.
	Feed bool
	// Title is the title of the feed.
	Title string
	// BaseURL is the base URL used for feed links.
	BaseURL *url.URL
}

func (c *Config) setDefaults() {
	if c.Src == "" {
		c.Src = filepath.Join(".")
	}
	if c.Dst == "" {
		c.Dst = filepath.Join(".", "docs")
	}
	if c.Style == "" {
		c.Style = "github"
	}
	if c.Title == "" {
		c.Title = "Documentation"
	}
	if c.BaseURL == nil {
		c.BaseURL = &url.URL{Path: "/"}
	}
}

// readmeNames lists the names of the root page source, in order of
// preference, without the .md suffix.
var readmeNames = []string{"Readme", "README", "readme"}

// Build builds a site based on the provided [Config].
func Build(ctx context.Context, c *Config) error {
	c.setDefaults()
	b := newBuildContext(c)

	if err := os.MkdirAll(c.Dst, 0o755); err != nil {
		return err
	}

	readme, err := b.readmePath()
	if err != nil {
		return err
	}
	if err := b.writePage(ctx, readme, "index"); err != nil {
		return err
	}

	dirs, err := b.dirsWithMarkdown()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(c.Dst, dir), 0o755); err != nil {
			return err
		}
		names, err := markdownFiles(filepath.Join(c.Src, dir))
		if err != nil {
			return err
		}
		for _, name := range names {
			if err := b.writePage(ctx, filepath.Join(dir, name), filepath.Join(dir, name)); err != nil {
				return err
			}
		}
	}

	if c.Feed {
		return b.buildFeed()
	}
	return nil
}

type buildContext struct {
	c     *Config
	md    *markdown.Parser
	min   *min
	pages []*page
}

func newBuildContext(c *Config) *buildContext {
	b := &buildContext{
		c:  c,
		md: newParser(),
	}
	if c.Minify {
		b.min = newMin()
	}
	return b
}

// page is a generated page, remembered for the feed.
type page struct {
	src  string // source path relative to Src, without the .md suffix
	dst  string // output path relative to Dst, with the .html suffix
	html []byte
	info fs.FileInfo // source file info
}

// readmePath returns the root page source relative to Src, without suffix.
func (b *buildContext) readmePath() (string, error) {
	for _, name := range readmeNames {
		if _, err := os.Stat(filepath.Join(b.c.Src, withSuffix(name, ".md"))); err == nil {
			return name, nil
		}
	}
	// Let the read report the error for the preferred name.
	_, err := os.Stat(filepath.Join(b.c.Src, withSuffix(readmeNames[0], ".md")))
	return "", err
}

// writePage converts the Markdown file src (relative to Src) and writes the
// result into dst (relative to Dst).
func (b *buildContext) writePage(ctx context.Context, src, dst string) error {
	srcPath := filepath.Join(b.c.Src, withSuffix(src, ".md"))
	info, err := os.Stat(srcPath)
	if err != nil {
		return err
	}
	md, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	html, err := b.render(string(md))
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}
	out := []byte(html)
	if b.min != nil {
		out, err = b.min.Bytes("text/html", out)
		if err != nil {
			return fmt.Errorf("%s: %w", srcPath, err)
		}
	}

	dstPath := filepath.Join(b.c.Dst, withSuffix(dst, ".html"))
	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return err
	}
	logger.Info(ctx, "wrote page", slog.String("src", srcPath), slog.String("dst", dstPath))

	b.pages = append(b.pages, &page{
		src:  src,
		dst:  filepath.ToSlash(withSuffix(dst, ".html")),
		html: out,
		info: info,
	})
	return nil
}

// withSuffix returns path with suffix appended, unless path already ends with
// it.
func withSuffix(path, suffix string) string {
	if strings.HasSuffix(path, suffix) {
		return path
	}
	return path + suffix
}

// markdownFiles returns the names of Markdown files directly inside dir,
// without the .md suffix.
func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	return names, nil
}

// dirsWithMarkdown returns the immediate subdirectories of Src that contain
// at least one Markdown file.
func (b *buildContext) dirsWithMarkdown() ([]string, error) {
	entries, err := os.ReadDir(b.c.Src)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if b.isDst(e.Name()) {
			continue
		}
		names, err := markdownFiles(filepath.Join(b.c.Src, e.Name()))
		if err != nil {
			return nil, err
		}
		if len(names) > 0 {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// isDst reports whether the subdirectory name of Src is the output directory.
func (b *buildContext) isDst(name string) bool {
	dir, err := filepath.Abs(filepath.Join(b.c.Src, name))
	if err != nil {
		return false
	}
	dst, err := filepath.Abs(b.c.Dst)
	if err != nil {
		return false
	}
	return dir == dst
}
