package hooks

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the trigger tools that tool looks like a variant of,
// for example "Edit" or "multiedit" for "edit". It returns nil for exact
// triggers and for identifiers that resemble none of them.
//
// Suggestions are advisory only: IsFileMutation stays an exact match.
func Suggest(tool string) []string {
	if tool == "" || IsFileMutation(tool) {
		return nil
	}
	lower := strings.ToLower(tool)

	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	// "ed" -> "edit": the identifier is an abbreviation of a trigger.
	for _, m := range fuzzy.Find(lower, FileMutationTools) {
		add(m.Str)
	}
	// "apply_patch" -> "patch": a trigger is spelled out inside the identifier.
	for _, name := range FileMutationTools {
		if len(fuzzy.Find(name, []string{lower})) > 0 {
			add(name)
		}
	}
	return out
}
