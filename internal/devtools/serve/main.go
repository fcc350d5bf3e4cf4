// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/docsite/internal/site"
)

func main() { cli.Main(new(app)) }

type app struct {
	listen string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.listen, "listen", "localhost:3000", "Listen on `host:port`.")
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

	cfg := &site.Config{
		Src: ".",
		Dst: dir,
	}
	return site.Serve(ctx, cfg, a.listen)
}
