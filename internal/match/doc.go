// Package match ranks known names by similarity to an unknown one, so that
// unresolved-reference diagnostics can offer "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds case and drops separators, including scope dots
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates above a similarity floor
package match
