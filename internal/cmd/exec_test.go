package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/fixhook/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'recipe fix failed' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "recipe fix failed" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "recipe fix failed")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("RunContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := RunContext(logCtx(), dir, "sh", "-c", "touch formatted"); err != nil {
		t.Fatalf("RunContext with dir = %v, want nil", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "formatted")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
}

func TestRunContext_NotFound(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "fixhook-definitely-missing-binary")
	if err == nil {
		t.Error("RunContext(missing binary) = nil, want error")
	}
}

func TestRunContext_PathWithShellCharacters(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	marker := filepath.Join(dir, "injected")
	arg := "a b; touch " + marker
	out, err := OutputContext(logCtx(), "", "printf", "%s", arg)
	if err != nil {
		t.Fatalf("OutputContext = %v, want nil", err)
	}
	if string(out) != arg {
		t.Errorf("argument = %q, want %q", out, arg)
	}
	if _, err := os.Stat(marker); err == nil {
		t.Error("argument was interpreted by a shell")
	}
}

func TestRunContext_VerboseTrace(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunContext(ctx, "", "true"); err != nil {
		t.Fatalf("RunContext(true) = %v, want nil", err)
	}
	if !strings.HasPrefix(buf.String(), "$ true (") {
		t.Errorf("trace = %q, want prefix %q", buf.String(), "$ true (")
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_Failure(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("OutputContext(exit 1) = nil, want error")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'no justfile found' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "no justfile found" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "no justfile found")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("OutputContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}
