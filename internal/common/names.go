package common

import "strings"

// UnknownStr is the String() fallback for enum-like values outside their range.
const UnknownStr = "unknown"

// QualifierSep separates the scopes of a qualified name (e.g. "Ref.cmdDisp.CMD_NO_OP").
const QualifierSep = "."

// TrimQualifier removes a leading "prefix." scope from name.
// Names that do not start with the prefix are returned unchanged.
func TrimQualifier(name, prefix string) string {
	if prefix == "" {
		return name
	}

	return strings.TrimPrefix(name, prefix+QualifierSep)
}

// ShortName returns the last scope of a qualified name.
func ShortName(name string) string {
	if i := strings.LastIndex(name, QualifierSep); i >= 0 {
		return name[i+1:]
	}

	return name
}
