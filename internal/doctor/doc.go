// Package doctor checks whether the configured formatter can run.
//
// The hook itself never reports failures, so a broken setup is silent:
// files just stay unformatted. Doctor makes that visible on demand.
//
// # Checks
//
//   - program: the command's program is on PATH
//   - justfile: for just, a justfile exists in the directory or a parent
//   - recipe: for just, "just --summary" lists the configured recipe
//
// Checks stop at the first failure since later ones depend on it.
package doctor
