package analyze

import (
	"fmt"

	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
)

// StringKey identifies a string type by its base name and declared size.
type StringKey struct {
	BaseName string
	Size     int
}

// SyntheticName embeds the size in the type name, e.g. "string40".
func (k StringKey) SyntheticName() string {
	return fmt.Sprintf("%s%d", k.BaseName, k.Size)
}

// builtinKinds are reference kinds naming framework scalars (U32, F64, bool)
// that dictionaries use without declaring.
var builtinKinds = map[string]bool{
	fprime.KindInteger: true,
	fprime.KindFloat:   true,
	fprime.KindBool:    true,
}

// Interner hands out synthetic names for string types and remembers them,
// along with every builtin scalar referenced, until Materialize adds them
// to a TypeTable. Use one Interner per run.
type Interner struct {
	byName   map[string]StringKey
	builtins map[string]bool
	order    []string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		byName:   make(map[string]StringKey),
		builtins: make(map[string]bool),
	}
}

// Intern returns the canonical name for ref. String references are
// registered and mapped to their synthetic name; any other reference keeps
// its own name. owner names the declaration the reference belongs to and is
// only used in errors.
func (in *Interner) Intern(owner string, ref *fprime.TypeRef) (string, error) {
	if ref == nil {
		return "", diagnostic.Malformed(owner, "missing type")
	}

	if ref.Name == "" {
		return "", diagnostic.Malformed(owner, "type reference has no name")
	}

	if builtinKinds[ref.Kind] {
		if !in.builtins[ref.Name] && !in.registered(ref.Name) {
			in.order = append(in.order, ref.Name)
		}

		in.builtins[ref.Name] = true

		return ref.Name, nil
	}

	if ref.Kind != fprime.KindString {
		return ref.Name, nil
	}

	if ref.Size <= 0 {
		return "", diagnostic.Malformed(owner, "string type %s has non-positive size %d", ref.Name, ref.Size)
	}

	key := StringKey{BaseName: ref.Name, Size: ref.Size}
	name := key.SyntheticName()

	if prev, ok := in.byName[name]; ok {
		if prev != key {
			return "", diagnostic.Collision(owner,
				"string type %s(size=%d) and %s(size=%d) both map to %s",
				prev.BaseName, prev.Size, key.BaseName, key.Size, name)
		}

		return name, nil
	}

	if !in.builtins[name] {
		in.order = append(in.order, name)
	}

	in.byName[name] = key

	return name, nil
}

func (in *Interner) registered(name string) bool {
	_, ok := in.byName[name]
	return ok
}

// Names returns the native names registered so far (synthetic strings and
// builtin scalars), in discovery order.
func (in *Interner) Names() []string {
	return append([]string(nil), in.order...)
}

// StringTypes returns the synthetic string names registered so far, in discovery order.
func (in *Interner) StringTypes() []string {
	var out []string

	for _, name := range in.order {
		if in.registered(name) {
			out = append(out, name)
		}
	}

	return out
}

// Len returns the number of distinct native names registered.
func (in *Interner) Len() int {
	return len(in.order)
}

// Materialize adds every registered name that is not yet a key of table as
// a native entry. A registered name already used by a non-native
// declaration is a NameCollision.
func (in *Interner) Materialize(table *TypeTable) error {
	for _, name := range in.order {
		if existing := table.Get(name); existing != nil {
			if existing.Kind != TypeKindNative {
				return diagnostic.Collision(name,
					"native type collides with declared %s type", existing.Kind)
			}

			continue
		}

		t := &TypeDescriptor{Name: name, Kind: TypeKindNative}
		if key, ok := in.byName[name]; ok {
			t.Synthetic = true
			t.Size = key.Size
		}

		if err := table.Add(t); err != nil {
			return err
		}
	}

	return nil
}
