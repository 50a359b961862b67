package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and strips separators so that
// "cmdDisp.CMD_NO_OP", "cmddisp_cmd-no-op" and "CmdDispCmdNoOp" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a separator ignored when matching.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
