// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/docsite/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	minify  bool
	feed    bool
	title   string
	baseURL string
	style   string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.minify, "minify", false, "Minify generated pages.")
	fs.BoolVar(&a.feed, "feed", false, "Write an Atom feed of generated pages to feed.xml.")
	fs.StringVar(&a.title, "title", "", "Feed `title`.")
	fs.StringVar(&a.baseURL, "base-url", "", "Base `URL` for feed links.")
	fs.StringVar(&a.style, "style", "github", "Syntax highlighting `style`.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: want at most one output directory", cli.ErrInvalidArgs)
	}

	dir := filepath.Join(".", "docs")
	if len(env.Args) > 0 {
		dir = env.Args[0]
	}

	c := &site.Config{
		Src:    ".",
		Dst:    dir,
		Style:  a.style,
		Minify: a.minify,
		Feed:   a.feed,
		Title:  a.title,
	}
	if a.baseURL != "" {
		u, err := url.Parse(a.baseURL)
		if err != nil {
			return fmt.Errorf("%w: invalid base URL: %v", cli.ErrInvalidArgs, err)
		}
		c.BaseURL = u
	}
	return site.Build(ctx, c)
}
