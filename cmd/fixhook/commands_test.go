package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/fixhook/internal/config"
)

func TestCheckCmd(t *testing.T) {
	t.Parallel()

	ctx, out := testContext(t, config.Default(), t.TempDir())
	if err := execute(ctx, newCheckCmd(), "", "edit", "Edit", "read", "apply_patch"); err != nil {
		t.Fatalf("check = %v", err)
	}

	want := strings.Join([]string{
		`✓ "edit" triggers formatting`,
		`⚠ "Edit" does not trigger formatting (resembles "edit")`,
		`⚠ "read" does not trigger formatting`,
		`⚠ "apply_patch" does not trigger formatting (resembles "patch")`,
	}, "\n") + "\n"
	if got := ansi.Strip(out.String()); got != want {
		t.Errorf("check output =\n%s\nwant\n%s", got, want)
	}
}

func TestCheckCmd_ListsTriggers(t *testing.T) {
	t.Parallel()

	ctx, out := testContext(t, config.Default(), t.TempDir())
	if err := execute(ctx, newCheckCmd(), ""); err != nil {
		t.Fatalf("check = %v", err)
	}
	if got, want := out.String(), "Trigger tools: edit, write, patch\n"; got != want {
		t.Errorf("check output = %q, want %q", got, want)
	}
}

func TestFormatCmd_DryRun(t *testing.T) {
	t.Parallel()

	ctx, out := testContext(t, config.Default(), t.TempDir())
	if err := execute(ctx, newFormatCmd(), "", "-d", "--", "a.ts", "b c.ts", "-x.ts"); err != nil {
		t.Fatalf("format = %v", err)
	}

	want := "[dry-run] just fix a.ts\n[dry-run] just fix 'b c.ts'\n[dry-run] just fix ./-x.ts\n"
	if got := out.String(); got != want {
		t.Errorf("format output = %q, want %q", got, want)
	}
}

func TestFormatCmd_ReportsFailures(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Formatter: config.FormatterConfig{Command: []string{"fixhook-test-missing-formatter"}}}
	ctx, _ := testContext(t, cfg, t.TempDir())

	err := execute(ctx, newFormatCmd(), "", "a.ts", "b.ts")
	if err == nil {
		t.Fatal("format with missing program = nil, want error")
	}
	for _, path := range []string{"a.ts", "b.ts"} {
		if !strings.Contains(err.Error(), "fixhook-test-missing-formatter "+path) {
			t.Errorf("error %q does not name %s", err, path)
		}
	}
}

func TestFormatCmd_RequiresPath(t *testing.T) {
	t.Parallel()

	ctx, _ := testContext(t, config.Default(), t.TempDir())
	if err := execute(ctx, newFormatCmd(), ""); err == nil {
		t.Error("format without paths = nil, want error")
	}
}

func TestConfigShowCmd(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	ctx, out := testContext(t, cfg, t.TempDir())
	if err := execute(ctx, newConfigCmd(), "", "show"); err != nil {
		t.Fatalf("config show = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "[formatter]") || !strings.Contains(got, `command = ["just", "fix"]`) {
		t.Errorf("config show output = %q", got)
	}
	if strings.Contains(got, "timeout") {
		t.Errorf("config show printed an unset timeout: %q", got)
	}
}

func TestDoctorCmd_MissingProgram(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Formatter: config.FormatterConfig{Command: []string{"fixhook-test-missing-formatter"}}}
	ctx, out := testContext(t, cfg, t.TempDir())

	if err := execute(ctx, newDoctorCmd(), ""); err == nil {
		t.Error("doctor with missing program = nil, want error")
	}
	if got := ansi.Strip(out.String()); !strings.Contains(got, "✗ fixhook-test-missing-formatter not found on PATH") {
		t.Errorf("doctor output = %q", got)
	}
}
