package config

import (
	"fmt"
	"strings"
)

// Validate checks the formatter settings.
func (c *Config) Validate() error {
	f := c.Formatter

	if len(f.Command) == 0 || strings.TrimSpace(f.Command[0]) == "" {
		return fmt.Errorf("invalid formatter.command %q: program name must not be empty", f.Command)
	}
	if f.Command[0] == PathPlaceholder {
		return fmt.Errorf("invalid formatter.command %q: %s cannot be the program", f.Command, PathPlaceholder)
	}
	if n := countPlaceholders(f.Command); n > 1 {
		return fmt.Errorf("invalid formatter.command %q: %s may appear at most once, found %d", f.Command, PathPlaceholder, n)
	}
	if f.Timeout < 0 {
		return fmt.Errorf("invalid formatter.timeout %s: must not be negative", f.Timeout)
	}
	return nil
}

func countPlaceholders(argv []string) int {
	n := 0
	for _, a := range argv {
		if a == PathPlaceholder {
			n++
		}
	}
	return n
}
