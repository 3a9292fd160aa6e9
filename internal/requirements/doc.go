// Package requirements renders structured Python dependency specifiers to
// their canonical text form.
//
// Rendering is for generating dependency lists (e.g. when pinning a
// toolchain's seed packages); parsing requirement strings is out of scope.
// URLs keep literal `{` and `}` characters so ${VAR} placeholders in
// file:// sources survive for later template expansion.
package requirements
