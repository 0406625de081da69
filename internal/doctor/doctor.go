package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/raphi011/fixhook/internal/cmd"
	"github.com/raphi011/fixhook/internal/config"
)

// justfileNames are the file names just looks for, in its search order.
var justfileNames = []string{"justfile", "Justfile", ".justfile"}

// Doctor runs environment checks. Zero-valued fields use the real
// implementations.
type Doctor struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// Run checks that cfg's formatter command can run in dir.
func (d *Doctor) Run(ctx context.Context, cfg config.FormatterConfig, dir string) []Result {
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	output := d.Output
	if output == nil {
		output = cmd.OutputContext
	}

	command := cfg.Command
	if len(command) == 0 {
		command = config.DefaultCommand
	}
	if cfg.Dir != "" {
		dir = cfg.Dir
	}
	program := command[0]

	var results []Result

	// Check 1: program on PATH
	bin, err := lookPath(program)
	if err != nil {
		results = append(results, Result{
			Name:   "program",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s not found on PATH", program),
		})
		return results
	}
	results = append(results, Result{
		Name:   "program",
		Status: StatusOK,
		Detail: fmt.Sprintf("%s found at %s", program, bin),
	})

	if filepath.Base(program) != "just" {
		return results
	}

	recipe, opts := parseJustArgs(command[1:])

	// Check 2: a justfile is reachable from dir
	justfile, ok := justfileFor(opts, dir)
	if !ok {
		detail := fmt.Sprintf("no justfile in %s or its parents", displayDir(dir))
		if justfile != "" {
			detail = fmt.Sprintf("justfile %s not found", justfile)
		}
		results = append(results, Result{
			Name:   "justfile",
			Status: StatusFail,
			Detail: detail,
		})
		return results
	}
	results = append(results, Result{
		Name:   "justfile",
		Status: StatusOK,
		Detail: fmt.Sprintf("justfile found at %s", justfile),
	})

	// Check 3: the recipe exists
	if recipe == "" {
		return results
	}
	summary, err := output(ctx, dir, program, append(opts, "--summary")...)
	if err != nil {
		results = append(results, Result{
			Name:   "recipe",
			Status: StatusWarn,
			Detail: fmt.Sprintf("could not list recipes: %v", err),
		})
		return results
	}
	if !slices.Contains(strings.Fields(string(summary)), recipe) {
		results = append(results, Result{
			Name:   "recipe",
			Status: StatusFail,
			Detail: fmt.Sprintf("recipe %q not defined in %s", recipe, justfile),
		})
		return results
	}
	results = append(results, Result{
		Name:   "recipe",
		Status: StatusOK,
		Detail: fmt.Sprintf("recipe %q is defined", recipe),
	})

	return results
}

// FindJustfile looks for a justfile in dir and then each parent directory.
func FindJustfile(dir string) (string, bool) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range justfileNames {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// justValueFlags are the just options that consume following arguments.
var justValueFlags = map[string]int{
	"-f":                  1,
	"--justfile":          1,
	"-d":                  1,
	"--working-directory": 1,
	"--set":               2,
	"--shell":             1,
	"--shell-arg":         1,
	"--dotenv-filename":   1,
	"--dotenv-path":       1,
	"--color":             1,
	"--chooser":           1,
}

// parseJustArgs splits just's arguments into the recipe and the options
// given before it. Option values and the path placeholder are never taken
// for the recipe.
func parseJustArgs(args []string) (recipe string, opts []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if n, ok := justValueFlags[a]; ok {
			end := min(i+1+n, len(args))
			opts = append(opts, args[i:end]...)
			i = end - 1
			continue
		}
		if strings.HasPrefix(a, "-") {
			opts = append(opts, a)
			continue
		}
		if a == config.PathPlaceholder {
			continue
		}
		return a, opts
	}
	return "", opts
}

// justfileFor returns the justfile just will use: the one named by
// -f/--justfile relative to dir, else the result of FindJustfile.
func justfileFor(opts []string, dir string) (string, bool) {
	for i, o := range opts {
		var name string
		switch {
		case (o == "-f" || o == "--justfile") && i+1 < len(opts):
			name = opts[i+1]
		case strings.HasPrefix(o, "--justfile="):
			name = strings.TrimPrefix(o, "--justfile=")
		default:
			continue
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		info, err := os.Stat(name)
		return name, err == nil && !info.IsDir()
	}
	return FindJustfile(dir)
}

func displayDir(dir string) string {
	if dir == "" {
		return "the current directory"
	}
	return dir
}
