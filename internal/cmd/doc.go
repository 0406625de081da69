// Package cmd runs external commands on behalf of fixhook.
//
// Commands are always started directly with an argument vector, never via
// a shell, so arguments such as file paths reach the program verbatim no
// matter which characters they contain.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, dir, "just", "fix", path); err != nil {
//	    // err contains stderr output if available
//	}
//
//	out, err := cmd.OutputContext(ctx, dir, "just", "--summary")
//
// Every invocation is traced through the context logger when verbose
// output is enabled.
package cmd
