package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/log"
)

// prepareIn runs prepare for cmd in workDir with no global config file.
func prepareIn(t *testing.T, cmd *cobra.Command, workDir string, verbose, quiet bool) error {
	t.Helper()
	t.Setenv(config.ConfigEnvVar, filepath.Join(t.TempDir(), "config.toml"))
	cmd.SetContext(config.WithWorkDir(context.Background(), workDir))
	return prepare(cmd, verbose, quiet)
}

func TestPrepare_VerboseAndQuiet(t *testing.T) {
	t.Run("run resolves to quiet", func(t *testing.T) {
		run := newRunCmd()
		if err := prepareIn(t, run, t.TempDir(), true, true); err != nil {
			t.Fatalf("prepare(run) = %v, want nil", err)
		}
		if log.FromContext(run.Context()).IsVerbose() {
			t.Error("run logger is verbose, want quiet")
		}
	})

	t.Run("other commands reject the combination", func(t *testing.T) {
		if err := prepareIn(t, newFormatCmd(), t.TempDir(), true, true); err == nil {
			t.Error("prepare(format) = nil, want mutually exclusive error")
		}
	})
}

func TestPrepare_BrokenLocalConfig(t *testing.T) {
	workDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(workDir, config.LocalConfigFileName), []byte("[formatter\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("run falls back to defaults", func(t *testing.T) {
		run := newRunCmd()
		if err := prepareIn(t, run, workDir, false, false); err != nil {
			t.Fatalf("prepare(run) = %v, want nil", err)
		}
		cfg := config.FromContext(run.Context())
		if !slices.Equal(cfg.Formatter.Command, config.DefaultCommand) {
			t.Errorf("command = %q, want %q", cfg.Formatter.Command, config.DefaultCommand)
		}
	})

	t.Run("format reports the error", func(t *testing.T) {
		if err := prepareIn(t, newFormatCmd(), workDir, false, false); err == nil {
			t.Error("prepare(format) = nil, want config error")
		}
	})
}
