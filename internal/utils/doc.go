// Package utils provides shared utility functions for the rewa application.
//
// This package contains general-purpose helpers used across multiple packages:
//
//   - ExpandEnvVars: one-pass ${NAME} template substitution with a
//     caller-supplied resolver
//   - IsValidName: registry/toolchain name validation
//   - ReadSecret: hidden terminal input for secret values
//   - GetUsername: current system username
package utils
