package hooks

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/raphi011/fixhook/internal/cmd"
	"github.com/raphi011/fixhook/internal/config"
	"github.com/raphi011/fixhook/internal/output"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// 'it'\''s' is how a single quote survives inside single quotes.
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// needsQuote reports whether s would be split or expanded by a POSIX shell.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		}
		return !strings.ContainsRune("-_./=:,+@%", r)
	})
}

// FormatCommand renders argv as a shell command line, quoting where needed.
// It is for display only; commands are never run through a shell.
func FormatCommand(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		if needsQuote(a) {
			parts[i] = shellQuote(a)
		} else {
			parts[i] = a
		}
	}
	return strings.Join(parts, " ")
}

// Runner executes an external command and waits for it to finish.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// AfterToolFunc is the host's "after tool execution" callback signature.
type AfterToolFunc func(ctx context.Context, in Input, out Output)

// Registry is the extension point that after-tool callbacks attach to.
// The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	after []AfterToolFunc
}

// Register adds fn to the callbacks run after every tool execution.
func (r *Registry) Register(fn AfterToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.after = append(r.after, fn)
}

// Dispatch runs every registered callback in registration order and
// returns once the last one has returned.
func (r *Registry) Dispatch(ctx context.Context, in Input, out Output) {
	r.mu.RLock()
	after := slices.Clone(r.after)
	r.mu.RUnlock()

	for _, fn := range after {
		fn(ctx, in, out)
	}
}

// Formatter formats files touched by file-mutating tools.
// It holds no per-event state and is safe for concurrent use.
type Formatter struct {
	Command []string      // argv; defaults to config.DefaultCommand
	Dir     string        // working directory; empty means the current one
	WorkDir string        // directory relative paths are given against; empty means Dir
	Timeout time.Duration // zero means no deadline
	DryRun  bool          // print the command instead of running it
	Run     Runner        // defaults to cmd.RunContext
}

// NewFormatter returns a Formatter for the given settings.
func NewFormatter(cfg config.FormatterConfig) *Formatter {
	return &Formatter{
		Command: slices.Clone(cfg.Command),
		Dir:     cfg.Dir,
		Timeout: cfg.Timeout,
	}
}

// Hook returns the formatter as a callback for Registry.Register.
func (f *Formatter) Hook() AfterToolFunc {
	return f.AfterToolExecution
}

// AfterToolExecution reformats the file an edit, write or patch tool just
// touched by running the formatter command on it. Any failure is discarded.
func (f *Formatter) AfterToolExecution(ctx context.Context, in Input, out Output) {
	if !IsFileMutation(in.Tool) {
		return
	}
	path, ok := FilePath(out)
	if !ok {
		return
	}

	// The format attempt is best effort; its outcome is deliberately dropped.
	_ = f.Format(ctx, path)
}

// Format runs the formatter command for path and waits for it.
func (f *Formatter) Format(ctx context.Context, path string) error {
	argv := f.Argv(path)

	if f.DryRun {
		output.FromContext(ctx).Printf("[dry-run] %s\n", FormatCommand(argv))
		return nil
	}

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	run := f.Run
	if run == nil {
		run = cmd.RunContext
	}
	if err := run(ctx, f.Dir, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("%s: %w", FormatCommand(argv), err)
	}
	return nil
}

// Argv returns the command that formats path. path replaces every
// config.PathPlaceholder argument, or is appended when there is none.
// A relative path is rebased onto WorkDir when Dir points elsewhere.
func (f *Formatter) Argv(path string) []string {
	command := f.Command
	if len(command) == 0 {
		command = config.DefaultCommand
	}
	path = pathArg(f.resolve(path))

	argv := make([]string, 0, len(command)+1)
	substituted := false
	for _, a := range command {
		if a == config.PathPlaceholder {
			argv = append(argv, path)
			substituted = true
			continue
		}
		argv = append(argv, a)
	}
	if !substituted {
		argv = append(argv, path)
	}
	return argv
}

// resolve rebases a relative path onto WorkDir when the command runs in a
// different directory.
func (f *Formatter) resolve(path string) string {
	if f.WorkDir == "" || f.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	if filepath.Clean(f.WorkDir) == filepath.Clean(f.Dir) {
		return path
	}
	return filepath.Join(f.WorkDir, path)
}

// pathArg keeps a relative path that starts with "-" from being parsed as a flag.
func pathArg(path string) string {
	if strings.HasPrefix(path, "-") {
		return "./" + path
	}
	return path
}
