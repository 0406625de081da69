package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// FileMutationTools are the host tool identifiers that trigger formatting.
// Matching is exact and case-sensitive; a new host identifier for a
// file-mutating tool will not trigger until it is added here.
var FileMutationTools = []string{"edit", "write", "patch"}

// Input is what the host passes about the tool call that just ran.
type Input struct {
	Tool string `json:"tool"`
}

// Output is the host-defined result of the tool call. Its shape is not
// guaranteed; FilePath is the only accessor the hook relies on.
type Output map[string]any

// Event is one "after tool execution" notification as the host sends it.
type Event struct {
	Input  Input  `json:"input"`
	Output Output `json:"output"`
}

// maxEventLen bounds a single event read from the host.
const maxEventLen = 1 << 20

// DecodeEvent reads a single JSON event from r.
func DecodeEvent(r io.Reader) (Event, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxEventLen+1))
	if err != nil {
		return Event{}, fmt.Errorf("read event: %w", err)
	}
	if len(data) > maxEventLen {
		return Event{}, fmt.Errorf("event exceeds %d bytes", maxEventLen)
	}
	if len(data) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return evt, nil
}

// IsFileMutation reports whether tool is one of FileMutationTools.
func IsFileMutation(tool string) bool {
	return slices.Contains(FileMutationTools, tool)
}

// FilePath returns out.args.filePath. Anything other than a non-empty
// string at that location reports false.
func FilePath(out Output) (string, bool) {
	var args map[string]any
	switch a := out["args"].(type) {
	case map[string]any:
		args = a
	case Output:
		args = a
	default:
		return "", false
	}
	path, ok := args["filePath"].(string)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}
