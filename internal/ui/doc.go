// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (paths,
// registry names, errors, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("rewa creds init")  // a runnable command
//	ui.Path.Sprint("~/.local/share/rewa")
//	ui.Highlight.Sprint("pypi")        // a user-supplied name
package ui
