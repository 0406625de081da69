// Package hooks implements the post-edit formatter hook.
//
// A host tool-execution runtime calls an "after tool execution" callback
// with the tool's identifier and its result. When the tool is a file
// mutation (edit, write or patch) and the result names a file in
// args.filePath, the [Formatter] runs the project's fix command on it:
//
//	just fix <path>
//
// The command is started directly, without a shell, so the path cannot
// inject anything regardless of the characters it contains.
//
// # Failure Semantics
//
// Formatting is best effort. A missing path, a missing binary, a non-zero
// exit or a timeout all end the same way: the callback returns and the file
// stays as it was. Nothing is logged, retried or reported to the host.
//
// # Registration
//
// [Registry] models the host's extension point:
//
//	var reg hooks.Registry
//	f := &hooks.Formatter{}
//	reg.Register(f.Hook())
//	reg.Dispatch(ctx, hooks.Input{Tool: "edit"}, out)
//
// The fixhook CLI owns a Registry, decodes one [Event] per run and
// dispatches it.
//
// # Command
//
// The argv defaults to [config.DefaultCommand] with the path appended. A configured
// command may place the path explicitly with the {path} placeholder:
//
//	command = ["just", "fix", "{path}", "--check"]
package hooks
