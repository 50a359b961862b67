// Package diagnostic provides structured warnings and errors for the
// mission database generator.
//
// Findings fall into four kinds:
//   - MalformedInput: a declaration cannot be resolved as written (fatal)
//   - NameCollision: two declarations claim the same name (fatal)
//   - UnresolvedReference: a name is referenced but never defined (warning)
//   - UnsupportedCommandArgument: a command is dropped from the output (warning)
//
// Fatal findings are returned as *Error values; the rest are collected in a
// Diagnostics value that travels with the resolved dictionary.
package diagnostic
