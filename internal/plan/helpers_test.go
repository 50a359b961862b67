package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fprime-yamcs-mdb/internal/fprime"
)

const refTestdata = "../fprime/testdata/"

func loadRef(t *testing.T) (*fprime.Dictionary, *fprime.PacketList) {
	t.Helper()

	dict, err := fprime.LoadDictionary(refTestdata + "RefTopologyDictionary.json")
	require.NoError(t, err)

	packets, err := fprime.LoadPackets(refTestdata + "RefPackets.xml")
	require.NoError(t, err)

	return dict, packets
}

func resolveRef(t *testing.T) *ResolvedDictionary {
	t.Helper()

	dict, packets := loadRef(t)

	cfg := DefaultConfig()
	cfg.Name = "Ref"
	cfg.StripPrefix = "Ref"

	rd, err := NewResolver(dict, packets, cfg).Resolve()
	require.NoError(t, err)

	return rd
}

func typeRef(name, kind string, size int) *fprime.TypeRef {
	return &fprime.TypeRef{Name: name, Kind: kind, Size: size}
}

func opcode(v int64) *int64 { return &v }
