// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/docsite/internal/quickdoc"
)

func main() { cli.Main(cli.AppFunc(run)) }

func run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) == 0 {
		return fmt.Errorf("%w: want at least one Go file", cli.ErrInvalidArgs)
	}

	p, err := quickdoc.Load(ctx, env.Args)
	if err != nil {
		return err
	}
	return quickdoc.Print(env.Stdout, p)
}
