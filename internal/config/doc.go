// Package config handles loading and validation of fixhook configuration.
//
// Configuration is optional. Without any file fixhook runs "just fix <path>"
// in the directory the host starts it in.
//
// # Configuration Sources (highest priority first)
//
//   - .fixhook.toml in the working directory (project overrides)
//   - $FIXHOOK_CONFIG, or ~/.config/fixhook/config.toml
//   - Default values
//
// # Settings
//
//	[formatter]
//	command = ["just", "fix"]  # argv, path appended
//	timeout = "30s"            # optional deadline
//	dir = "~/src/project"      # optional working directory
//
// A command may place the path explicitly with "{path}", at most once:
//
//	command = ["just", "fix", "{path}", "--unsafe"]
//
// # Path Validation
//
// formatter.dir in the global file must be absolute or start with ~. In a
// project file a relative dir resolves against the project directory.
package config
