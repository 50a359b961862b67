package analyze

import (
	"strings"

	"fprime-yamcs-mdb/internal/diagnostic"
)

// ContainsArray reports whether the named type is an array or a struct with
// a member that (transitively) contains an array. Names absent from the
// table are treated as array-free. A struct that reaches itself through its
// members is a MalformedInput error.
func ContainsArray(name string, table *TypeTable) (bool, error) {
	return containsArray(name, table, nil)
}

// containsArray walks struct members depth first. path holds the structs on
// the current walk and detects cycles.
func containsArray(name string, table *TypeTable, path []string) (bool, error) {
	t := table.Get(name)
	if t == nil {
		return false, nil
	}

	switch t.Kind {
	case TypeKindArray:
		return true, nil

	case TypeKindStruct:
		for i, p := range path {
			if p == name {
				cycle := append(append([]string{}, path[i:]...), name)
				return false, diagnostic.Malformed(name, "recursive type: %s", strings.Join(cycle, " -> "))
			}
		}

		path = append(path, name)

		for _, m := range t.Members {
			found, err := containsArray(m.Type, table, path)
			if err != nil {
				return false, err
			}

			if found {
				return true, nil
			}
		}

		return false, nil

	default:
		return false, nil
	}
}
