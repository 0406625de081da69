package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/log"
	"github.com/raphi011/fixhook/internal/output"
)

// testContext returns a context carrying cfg, a work dir and a printer
// that writes into the returned buffer.
func testContext(t *testing.T, cfg config.Config, workDir string) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &out)
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, &out
}

// execute runs cmd with args and stdin.
func execute(ctx context.Context, cmd *cobra.Command, stdin string, args ...string) error {
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}
