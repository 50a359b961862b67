package analyze

import (
	"fprime-yamcs-mdb/internal/common"
	"fprime-yamcs-mdb/internal/diagnostic"
)

// TypeKind represents the kind of a resolved type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNative           // opaque scalar (U32, F64, bool, string40, ...)
	TypeKindEnum             // enumeration over a native representation type
	TypeKindStruct           // ordered named members
	TypeKindArray            // fixed-size array of an element type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindNative:
		return "native"
	case TypeKindEnum:
		return "enum"
	case TypeKindStruct:
		return "struct"
	case TypeKindArray:
		return "array"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the kind by name in exported documents.
func (k TypeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsLeaf reports whether types of this kind reference only native types.
func (k TypeKind) IsLeaf() bool {
	return k == TypeKindNative || k == TypeKindEnum
}

// Member is a named struct member.
type Member struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Enumerator is a named enum constant. Values need not be unique.
type Enumerator struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

// TypeDescriptor describes a resolved type. All references are qualified
// names expected to be keys of the owning TypeTable.
type TypeDescriptor struct {
	Name string   `yaml:"name"`
	Kind TypeKind `yaml:"kind"`

	// Enum
	ReprType    string       `yaml:"representation,omitempty"`
	Enumerators []Enumerator `yaml:"enumerators,omitempty"`

	// Struct
	Members []Member `yaml:"members,omitempty"`

	// Array. Size is also the byte length of a synthetic string.
	ElemType string `yaml:"element,omitempty"`
	Size     int    `yaml:"size,omitempty"`

	// Synthetic is set for string types created by the Interner.
	Synthetic bool `yaml:"synthetic,omitempty"`
}

// Refs returns the type names this descriptor references, in declaration order.
func (t *TypeDescriptor) Refs() []string {
	switch t.Kind {
	case TypeKindEnum:
		return []string{t.ReprType}
	case TypeKindArray:
		return []string{t.ElemType}
	case TypeKindStruct:
		refs := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			refs = append(refs, m.Type)
		}

		return refs
	default:
		return nil
	}
}

// TypeTable maps qualified names to resolved types.
type TypeTable struct {
	// Types maps qualified name to descriptor.
	Types map[string]*TypeDescriptor
	// Names lists the keys of Types in insertion order.
	Names []string
}

// NewTypeTable creates a new empty TypeTable.
func NewTypeTable() *TypeTable {
	return &TypeTable{
		Types: make(map[string]*TypeDescriptor),
	}
}

// Add inserts a descriptor. A name that is already present is a NameCollision.
func (tt *TypeTable) Add(t *TypeDescriptor) error {
	if prev, ok := tt.Types[t.Name]; ok {
		return diagnostic.Collision(t.Name, "type is declared twice (%s and %s)", prev.Kind, t.Kind)
	}

	tt.Types[t.Name] = t
	tt.Names = append(tt.Names, t.Name)

	return nil
}

// Get returns the descriptor for name, or nil if not found.
func (tt *TypeTable) Get(name string) *TypeDescriptor {
	return tt.Types[name]
}

// Has reports whether name is a key of the table.
func (tt *TypeTable) Has(name string) bool {
	_, ok := tt.Types[name]
	return ok
}

// Len returns the number of entries.
func (tt *TypeTable) Len() int {
	return len(tt.Names)
}

// Ordered returns the descriptors in insertion order.
func (tt *TypeTable) Ordered() []*TypeDescriptor {
	out := make([]*TypeDescriptor, 0, len(tt.Names))
	for _, name := range tt.Names {
		out = append(out, tt.Types[name])
	}

	return out
}

// OfKind returns the descriptors of the given kind in insertion order.
func (tt *TypeTable) OfKind(kind TypeKind) []*TypeDescriptor {
	var out []*TypeDescriptor

	for _, name := range tt.Names {
		if t := tt.Types[name]; t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}

// Reference is an edge from a table entry to a type name.
type Reference struct {
	Owner string
	Name  string
}

// Unresolved returns every reference made by a table entry to a name that
// is not itself a key of the table. An empty result means the table is closed.
func (tt *TypeTable) Unresolved() []Reference {
	var out []Reference

	for _, t := range tt.Ordered() {
		for _, ref := range t.Refs() {
			if !tt.Has(ref) {
				out = append(out, Reference{Owner: t.Name, Name: ref})
			}
		}
	}

	return out
}
