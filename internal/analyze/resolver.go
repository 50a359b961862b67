package analyze

import (
	"slices"

	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
)

// nativeKinds are the declaration kinds that resolve to a bare native entry.
var nativeKinds = []string{
	fprime.KindInteger,
	fprime.KindFloat,
	fprime.KindBool,
	fprime.KindString,
	fprime.KindAlias,
	fprime.KindNative,
}

// Resolver turns raw type definitions into a TypeTable.
type Resolver struct {
	interner *Interner
}

// NewResolver creates a Resolver that interns string references through interner.
// The same interner should be used for channels and commands of the run.
func NewResolver(interner *Interner) *Resolver {
	return &Resolver{interner: interner}
}

// Resolve resolves every definition in a single pass, preserving order.
// The returned table does not yet contain synthetic string types; call
// Interner.Materialize once every reference of the run has been interned.
func (r *Resolver) Resolve(defs []fprime.TypeDefinition) (*TypeTable, error) {
	table := NewTypeTable()

	for i := range defs {
		t, err := r.resolveDefinition(&defs[i])
		if err != nil {
			return nil, err
		}

		if err := table.Add(t); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// resolveDefinition resolves one definition.
func (r *Resolver) resolveDefinition(def *fprime.TypeDefinition) (*TypeDescriptor, error) {
	name := def.QualifiedName
	if name == "" {
		return nil, diagnostic.Malformed("", "%s definition has no qualifiedName", def.Kind)
	}

	switch def.Kind {
	case fprime.KindStruct:
		return r.resolveStruct(def)
	case fprime.KindArray:
		return r.resolveArray(def)
	case fprime.KindEnum:
		return r.resolveEnum(def)
	}

	if slices.Contains(nativeKinds, def.Kind) {
		return &TypeDescriptor{Name: name, Kind: TypeKindNative}, nil
	}

	return nil, diagnostic.Malformed(name, "unrecognized type kind %q", def.Kind)
}

func (r *Resolver) resolveStruct(def *fprime.TypeDefinition) (*TypeDescriptor, error) {
	if def.Members == nil {
		return nil, diagnostic.Malformed(def.QualifiedName, "struct has no members")
	}

	t := &TypeDescriptor{
		Name:    def.QualifiedName,
		Kind:    TypeKindStruct,
		Members: make([]Member, 0, len(def.Members)),
	}

	for _, m := range def.Members {
		typeName, err := r.interner.Intern(def.QualifiedName+"."+m.Name, m.Type)
		if err != nil {
			return nil, err
		}

		t.Members = append(t.Members, Member{Name: m.Name, Type: typeName})
	}

	return t, nil
}

func (r *Resolver) resolveArray(def *fprime.TypeDefinition) (*TypeDescriptor, error) {
	if def.Size == nil {
		return nil, diagnostic.Malformed(def.QualifiedName, "array has no size")
	}

	if *def.Size <= 0 {
		return nil, diagnostic.Malformed(def.QualifiedName, "array size %d must be positive", *def.Size)
	}

	if def.ElementType == nil {
		return nil, diagnostic.Malformed(def.QualifiedName, "array has no elementType")
	}

	elem, err := r.interner.Intern(def.QualifiedName, def.ElementType)
	if err != nil {
		return nil, err
	}

	return &TypeDescriptor{
		Name:     def.QualifiedName,
		Kind:     TypeKindArray,
		ElemType: elem,
		Size:     *def.Size,
	}, nil
}

func (r *Resolver) resolveEnum(def *fprime.TypeDefinition) (*TypeDescriptor, error) {
	if def.RepresentationType == nil {
		return nil, diagnostic.Malformed(def.QualifiedName, "enum has no representationType")
	}

	repr, err := r.interner.Intern(def.QualifiedName, def.RepresentationType)
	if err != nil {
		return nil, err
	}

	t := &TypeDescriptor{
		Name:        def.QualifiedName,
		Kind:        TypeKindEnum,
		ReprType:    repr,
		Enumerators: make([]Enumerator, 0, len(def.EnumeratedConstants)),
	}

	for _, c := range def.EnumeratedConstants {
		t.Enumerators = append(t.Enumerators, Enumerator{Name: c.Name, Value: c.Value})
	}

	return t, nil
}
