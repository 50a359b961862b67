package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fprime-yamcs-mdb/internal/fprime"
	"fprime-yamcs-mdb/internal/plan"
)

const refTestdata = "../fprime/testdata/"

func ref(name, kind string, size int) *fprime.TypeRef {
	return &fprime.TypeRef{Name: name, Kind: kind, Size: size}
}

func f32() *fprime.TypeRef { return ref("F32", fprime.KindFloat, 32) }

func u8() *fprime.TypeRef { return ref("U8", fprime.KindInteger, 8) }

func qid(name string) *fprime.TypeRef { return ref(name, fprime.KindQualifiedIdentifier, 0) }

func structDef(name string, members ...fprime.Member) fprime.TypeDefinition {
	return fprime.TypeDefinition{Kind: fprime.KindStruct, QualifiedName: name, Members: fprime.Members(members)}
}

func arrayDef(name string, elem *fprime.TypeRef, size int) fprime.TypeDefinition {
	return fprime.TypeDefinition{Kind: fprime.KindArray, QualifiedName: name, ElementType: elem, Size: &size}
}

func member(name string, typ *fprime.TypeRef) fprime.Member {
	return fprime.Member{Name: name, Type: typ}
}

func opcode(v int64) *int64 { return &v }

// resolve runs the resolution pipeline over an in-memory dictionary.
func resolve(t *testing.T, dict *fprime.Dictionary, packets *fprime.PacketList) *plan.ResolvedDictionary {
	t.Helper()

	cfg := plan.DefaultConfig()
	cfg.Name = "Test"

	rd, err := plan.NewResolver(dict, packets, cfg).Resolve()
	require.NoError(t, err)

	return rd
}

// translateRef translates the Ref deployment fixtures.
func translateRef(t *testing.T) *Schema {
	t.Helper()

	dict, err := fprime.LoadDictionary(refTestdata + "RefTopologyDictionary.json")
	require.NoError(t, err)

	packets, err := fprime.LoadPackets(refTestdata + "RefPackets.xml")
	require.NoError(t, err)

	cfg := plan.DefaultConfig()
	cfg.Name = "Ref"
	cfg.StripPrefix = "Ref"

	rd, err := plan.NewResolver(dict, packets, cfg).Resolve()
	require.NoError(t, err)

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(rd)
	require.NoError(t, err)

	return s
}

// typeRefs returns the type names an entity depends on.
func typeRefs(e Entity) []string {
	var refs []string

	switch v := e.(type) {
	case EnumType:
		refs = append(refs, v.ReprType)
	case AggregateType:
		for _, m := range v.Members {
			refs = append(refs, m.Type)
		}
	case ArrayType:
		refs = append(refs, v.ElemType)
	case TelemetryPacket:
		for _, f := range v.Fields {
			if f.Type != "" {
				refs = append(refs, f.Type)
			}
		}
	case Command:
		for _, p := range v.Params {
			refs = append(refs, p.Type)
		}
	}

	return refs
}

// requireDependencyOrder fails unless every referenced type was emitted
// before the entity referencing it.
func requireDependencyOrder(t *testing.T, s *Schema) {
	t.Helper()

	emitted := make(map[string]bool)

	for _, e := range s.Entities {
		for _, r := range typeRefs(e) {
			require.True(t, emitted[r], "%s %s references %s before it is emitted", e.Kind(), e.EntityName(), r)
		}

		if e.Kind() != EntityPacket && e.Kind() != EntityCommand {
			emitted[e.EntityName()] = true
		}
	}
}

