// Package templates provides the editor and workspace configuration templates
// shipped with vscode-settings and locates the template source for a run.
package templates

import "embed"

// FS embeds the src/ template tree. The "all:" prefix includes dotfiles
// (.editorconfig and .vscode/).
//
//go:embed all:src
var FS embed.FS
