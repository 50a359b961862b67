package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
)

func TestTranslate_Ref(t *testing.T) {
	s := translateRef(t)

	assert.Equal(t, "Ref", s.Name)
	assert.Equal(t, []string{
		"F32", "U32", "U8", "string8", "string16", "string40",
		"Status",
		"Vec3", "SampleSet", "Telemetry", "Tagged",
		"CDH", "Nav", "Signals",
		"cmdDisp.CMD_NO_OP", "cmdDisp.CMD_NO_OP_STRING", "nav.SET_POSITION",
	}, s.Names())

	requireDependencyOrder(t, s)

	n, ok := s.ArraySize("SampleSet")
	require.True(t, ok)
	assert.Equal(t, 10, n)

	_, ok = s.ArraySize("Telemetry")
	assert.False(t, ok)
}

func TestTranslate_StructOfScalars(t *testing.T) {
	dict := &fprime.Dictionary{
		TypeDefinitions: []fprime.TypeDefinition{
			structDef("Vec3", member("x", f32()), member("y", f32()), member("z", f32())),
		},
		Commands: []fprime.CommandDef{
			{Name: "SET_POSITION", Opcode: opcode(10), FormalParams: []fprime.ParamDef{{Name: "pos", Type: qid("Vec3")}}},
		},
	}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, nil))
	require.NoError(t, err)

	aggs := EntitiesOf[AggregateType](s)
	require.Len(t, aggs, 1)
	assert.Equal(t, AggregateType{Name: "Vec3", Members: []AggregateMember{
		{Name: "x", Type: "F32"}, {Name: "y", Type: "F32"}, {Name: "z", Type: "F32"},
	}}, aggs[0])

	cmds := EntitiesOf[Command](s)
	require.Len(t, cmds, 1)
	assert.Equal(t, Command{Name: "SET_POSITION", Opcode: 10, Params: []CommandParam{{Name: "pos", Type: "Vec3"}}}, cmds[0])
	assert.Empty(t, s.Diagnostics.Warnings)
}

func TestTranslate_ArrayMemberRejectsCommand(t *testing.T) {
	dict := &fprime.Dictionary{
		TypeDefinitions: []fprime.TypeDefinition{
			arrayDef("Samples", f32(), 10),
			structDef("Telemetry", member("samples", qid("Samples"))),
		},
		Channels: []fprime.ChannelDef{
			{Name: "sg.Samples", Type: qid("Samples")},
			{Name: "sg.Telemetry", Type: qid("Telemetry")},
		},
		Commands: []fprime.CommandDef{
			{Name: "UPLOAD", Opcode: opcode(1), FormalParams: []fprime.ParamDef{
				{Name: "slot", Type: u8()},
				{Name: "data", Type: qid("Telemetry")},
			}},
			{Name: "PING", Opcode: opcode(2), FormalParams: []fprime.ParamDef{{Name: "slot", Type: u8()}}},
		},
	}
	packets := &fprime.PacketList{Packets: []fprime.PacketDef{
		{ID: 7, Name: "Signals", Channels: []string{"sg.Samples", "sg.Telemetry"}},
	}}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, packets))
	require.NoError(t, err)

	cmds := EntitiesOf[Command](s)
	require.Len(t, cmds, 1)
	assert.Equal(t, "PING", cmds[0].Name)

	warnings := s.Diagnostics.WarningsOf(diagnostic.KindUnsupportedCommandArgument)
	require.Len(t, warnings, 1)
	assert.Equal(t, "UPLOAD", warnings[0].Subject)
	assert.Equal(t, "Telemetry", warnings[0].Related)

	pkts := EntitiesOf[TelemetryPacket](s)
	require.Len(t, pkts, 1)
	assert.Equal(t, []PacketField{
		{Name: "sg.Samples", Type: "Samples", Length: 10},
		{Name: "sg.Telemetry", Type: "Telemetry"},
	}, pkts[0].Fields)
	assert.True(t, pkts[0].Fields[0].IsArray())
	assert.False(t, pkts[0].Fields[1].IsArray())
}

func TestTranslate_CommandFilteringIsAllOrNothing(t *testing.T) {
	s := translateRef(t)

	for _, cmd := range EntitiesOf[Command](s) {
		for _, p := range cmd.Params {
			_, isArray := s.ArraySize(p.Type)
			assert.False(t, isArray, "%s.%s", cmd.Name, p.Name)
		}
	}

	warnings := s.Diagnostics.WarningsOf(diagnostic.KindUnsupportedCommandArgument)
	require.Len(t, warnings, 1)
	assert.Equal(t, "sg.UPLOAD", warnings[0].Subject)
	assert.Equal(t, "Telemetry", warnings[0].Related)
	assert.NotContains(t, s.Names(), "sg.UPLOAD")
}

func TestTranslate_StringsBySize(t *testing.T) {
	dict := &fprime.Dictionary{
		Channels: []fprime.ChannelDef{
			{Name: "a", Type: ref("string", fprime.KindString, 8)},
			{Name: "b", Type: ref("string", fprime.KindString, 16)},
			{Name: "c", Type: ref("string", fprime.KindString, 8)},
		},
	}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, nil))
	require.NoError(t, err)

	assert.Equal(t, []PrimitiveType{
		{Name: "string8", StringSize: 8},
		{Name: "string16", StringSize: 16},
	}, EntitiesOf[PrimitiveType](s))
}

func TestTranslate_UnknownPacketChannel(t *testing.T) {
	dict := &fprime.Dictionary{
		Channels: []fprime.ChannelDef{
			{Name: "cmdDisp.CommandsDispatched", Type: ref("U32", fprime.KindInteger, 32)},
		},
	}
	packets := &fprime.PacketList{Packets: []fprime.PacketDef{
		{ID: 1, Name: "CDH", Channels: []string{"cmdDisp.CommandsDispatched", "cmdDisp.CommandDispatched2"}},
	}}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, packets))
	require.NoError(t, err)

	pkts := EntitiesOf[TelemetryPacket](s)
	require.Len(t, pkts, 1)
	assert.Equal(t, PacketField{Name: "cmdDisp.CommandDispatched2"}, pkts[0].Fields[1])

	warnings := s.Diagnostics.WarningsOf(diagnostic.KindUnresolvedReference)
	require.Len(t, warnings, 1)
	assert.Equal(t, "cmdDisp.CommandDispatched2", warnings[0].Subject)
	assert.Equal(t, "CDH", warnings[0].Related)
	assert.Equal(t, []string{"cmdDisp.CommandsDispatched"}, warnings[0].Suggestions)
}

func TestTranslate_EnumAfterRepresentation(t *testing.T) {
	dict := &fprime.Dictionary{
		TypeDefinitions: []fprime.TypeDefinition{{
			Kind:               fprime.KindEnum,
			QualifiedName:      "Status",
			RepresentationType: u8(),
			EnumeratedConstants: []fprime.Constant{
				{Name: "OK", Value: 0},
				{Name: "FAIL", Value: 1},
			},
		}},
	}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, nil))
	require.NoError(t, err)

	require.Len(t, s.Entities, 2)
	assert.Equal(t, PrimitiveType{Name: "U8"}, s.Entities[0])
	assert.Equal(t, EnumType{Name: "Status", ReprType: "U8", Values: []EnumValue{
		{Label: "OK", Value: 0},
		{Label: "FAIL", Value: 1},
	}}, s.Entities[1])
}

func TestTranslate_NestedComposites(t *testing.T) {
	dict := &fprime.Dictionary{
		TypeDefinitions: []fprime.TypeDefinition{
			structDef("Outer", member("inner", qid("Inner")), member("grid", qid("Grid"))),
			arrayDef("Grid", qid("Row"), 3),
			structDef("Inner", member("x", f32())),
			arrayDef("Row", f32(), 4),
		},
	}

	s, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"F32", "Inner", "Row", "Grid", "Outer"}, s.Names())
	requireDependencyOrder(t, s)
}

func TestTranslate_RecursiveComposites(t *testing.T) {
	dict := &fprime.Dictionary{
		TypeDefinitions: []fprime.TypeDefinition{
			structDef("Leaf", member("v", f32())),
			structDef("A", member("b", qid("B"))),
			structDef("B", member("a", qid("A"))),
		},
	}

	_, err := NewTranslator(DefaultTranslatorConfig()).Translate(resolve(t, dict, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.KindMalformedInput)
	assert.Contains(t, err.Error(), "A, B")
}

func TestTranslate_Strict(t *testing.T) {
	dict := &fprime.Dictionary{}
	packets := &fprime.PacketList{Packets: []fprime.PacketDef{
		{ID: 1, Name: "P", Channels: []string{"nowhere"}},
	}}

	cfg := DefaultTranslatorConfig()
	cfg.Strict = true

	s, err := NewTranslator(cfg).Translate(resolve(t, dict, packets))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.KindUnresolvedReference)
	require.NotNil(t, s)
	assert.Len(t, s.Diagnostics.Errors, 1)
}

func TestTranslate_NilDictionary(t *testing.T) {
	_, err := NewTranslator(DefaultTranslatorConfig()).Translate(nil)
	require.Error(t, err)
}

func TestTranslate_LogsIgnoredChannels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	packets := &fprime.PacketList{Ignored: []string{"cmdDisp.CommandsDropped"}}

	cfg := DefaultTranslatorConfig()
	cfg.Logger = zap.New(core)

	_, err := NewTranslator(cfg).Translate(resolve(t, &fprime.Dictionary{}, packets))
	require.NoError(t, err)

	ignored := logs.FilterMessage("channel ignored by packet layout").All()
	require.Len(t, ignored, 1)
	assert.Equal(t, "cmdDisp.CommandsDropped", ignored[0].ContextMap()["channel"])
	assert.Equal(t, 1, logs.FilterMessage("translated schema").Len())
}

func TestEntityKind_String(t *testing.T) {
	assert.Equal(t, "aggregate", EntityAggregate.String())
	assert.Equal(t, "command", Command{}.Kind().String())
	assert.Equal(t, "unknown", EntityKind(99).String())
}
