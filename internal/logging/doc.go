// Package logger provides leveled logging for rewa CLI commands.
//
// Verbosity is modeled by CommandOutput, derived from the --quiet and
// --verbose flags (quiet wins when both are set). The separate --debug
// flag gates Debugf independently so debug traces can be enabled without
// changing the output level.
//
//	Logger.Infof()       // Shown at verbose level
//	Logger.Debugf()      // Shown when debug is enabled
//	Logger.Warnf()       // Shown unless quiet
//	Logger.WarnfAlways() // Always shown (critical warnings)
//	Logger.Errorf()      // Always shown
//
// Output goes to stdout for info/debug and stderr for warnings and errors,
// with semantic color prefixes from fatih/color.
package logger
