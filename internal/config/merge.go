package config

import "slices"

// MergeLocal merges a local per-project config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}

	merged := global
	merged.Formatter.Command = slices.Clone(global.Formatter.Command)

	if len(local.Formatter.Command) > 0 {
		merged.Formatter.Command = slices.Clone(local.Formatter.Command)
	}
	if local.Formatter.Timeout != nil {
		merged.Formatter.Timeout = *local.Formatter.Timeout
	}
	if local.Formatter.Dir != "" {
		merged.Formatter.Dir = local.Formatter.Dir
	}

	return merged
}
