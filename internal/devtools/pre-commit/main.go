// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Pre-commit runs checks that should pass before committing.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
	"go.astrophena.name/docsite/internal/devtools"
)

func main() { cli.Main(cli.AppFunc(run)) }

func run(ctx context.Context) error {
	devtools.EnsureRoot()

	isCI := cli.GetEnv(ctx).Getenv("CI") == "true"

	var w bytes.Buffer

	if err := runCmd(ctx, &w, "gofmt", "-d", "."); err != nil {
		return err
	}
	if diff := w.String(); diff != "" {
		return fmt.Errorf("run gofmt on these files:\n\t%v", diff)
	}

	steps := [][]string{
		{"go", "tool", "staticcheck", "./..."},
		{"go", "test", "./..."},
		{"go", "mod", "tidy", "--diff"},
		{"go", "tool", "addcopyright", "-check"},
	}
	if isCI {
		steps[1] = []string{"go", "test", "-race", "./..."}
	}
	for _, step := range steps {
		if err := runCmd(ctx, &w, step[0], step[1:]...); err != nil {
			return err
		}
	}
	return nil
}

func runCmd(ctx context.Context, buf *bytes.Buffer, cmd string, args ...string) error {
	buf.Reset()
	logger.Info(ctx, "running", slog.String("cmd", cmd), slog.Any("args", args))
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
	return nil
}
