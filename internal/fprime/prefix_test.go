package fprime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDeploymentPrefix(t *testing.T) {
	dict, err := LoadDictionary("testdata/RefTopologyDictionary.json")
	require.NoError(t, err)

	stripped := StripDeploymentPrefix(dict, "Ref")

	assert.Equal(t, "Vec3", stripped.TypeDefinitions[0].QualifiedName)
	assert.Equal(t, "SampleSet", stripped.TypeDefinitions[2].Members[0].Type.Name)
	assert.Equal(t, "U32", stripped.TypeDefinitions[2].Members[1].Type.Name)
	assert.Equal(t, "cmdDisp.CommandsDispatched", stripped.Channels[0].Name)
	assert.Equal(t, "Vec3", stripped.Channels[3].Type.Name)
	assert.Equal(t, "nav.SET_POSITION", stripped.Commands[2].Name)
	assert.Equal(t, "Vec3", stripped.Commands[2].FormalParams[0].Type.Name)

	// Original is untouched.
	assert.Equal(t, "Ref.Vec3", dict.TypeDefinitions[0].QualifiedName)
	assert.Equal(t, "Ref.SampleSet", dict.TypeDefinitions[2].Members[0].Type.Name)
	assert.Equal(t, "Ref.Vec3", dict.Commands[2].FormalParams[0].Type.Name)
}

func TestStripDeploymentPrefix_Empty(t *testing.T) {
	dict := &Dictionary{}
	assert.Same(t, dict, StripDeploymentPrefix(dict, ""))
}

func TestStripPacketPrefix(t *testing.T) {
	list := &PacketList{
		Packets: []PacketDef{{ID: 1, Name: "P", Channels: []string{"Ref.a.b", "c.d"}}},
		Ignored: []string{"Ref.x.y"},
	}

	out := StripPacketPrefix(list, "Ref")
	assert.Equal(t, []string{"a.b", "c.d"}, out.Packets[0].Channels)
	assert.Equal(t, []string{"x.y"}, out.Ignored)
	assert.Equal(t, "Ref.a.b", list.Packets[0].Channels[0])
}
