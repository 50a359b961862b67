package gen

import (
	"fprime-yamcs-mdb/internal/common"
	"fprime-yamcs-mdb/internal/diagnostic"
)

// EntityKind identifies the kind of an emitted entity.
type EntityKind int

const (
	EntityPrimitive EntityKind = iota
	EntityEnum
	EntityAggregate
	EntityArray
	EntityPacket
	EntityCommand
)

// String returns a human-readable representation of the EntityKind.
func (k EntityKind) String() string {
	switch k {
	case EntityPrimitive:
		return "primitive"
	case EntityEnum:
		return "enum"
	case EntityAggregate:
		return "aggregate"
	case EntityArray:
		return "array"
	case EntityPacket:
		return "packet"
	case EntityCommand:
		return "command"
	default:
		return common.UnknownStr
	}
}

// Entity is one element of the emitted schema.
type Entity interface {
	Kind() EntityKind
	EntityName() string
}

// PrimitiveType is a native scalar. StringSize is the byte length of a
// synthetic string type and zero otherwise.
type PrimitiveType struct {
	Name       string
	StringSize int
}

// EnumValue is one enumeration label.
type EnumValue struct {
	Label string
	Value int64
}

// EnumType is an enumeration encoded with a primitive representation type.
type EnumType struct {
	Name     string
	ReprType string
	Values   []EnumValue
}

// AggregateMember is a named member of an AggregateType.
type AggregateMember struct {
	Name string
	Type string
}

// AggregateType is a structure of named members, in declaration order.
type AggregateType struct {
	Name    string
	Members []AggregateMember
}

// ArrayType is a fixed-length array. Length lives on the packet fields that use it.
type ArrayType struct {
	Name     string
	ElemType string
	Length   int
}

// PacketField is one entry of a packet. Length is zero for scalar fields.
// Type is empty when the channel could not be resolved.
type PacketField struct {
	Name   string
	Type   string
	Length int
}

// IsArray reports whether the field repeats.
func (f PacketField) IsArray() bool {
	return f.Length > 0
}

// TelemetryPacket is a container keyed by packet id.
type TelemetryPacket struct {
	ID     int
	Name   string
	Fields []PacketField
}

// CommandParam is a command argument, in positional order.
type CommandParam struct {
	Name string
	Type string
}

// Command is an accepted command.
type Command struct {
	Name   string
	Opcode int64
	Params []CommandParam
}

func (PrimitiveType) Kind() EntityKind   { return EntityPrimitive }
func (EnumType) Kind() EntityKind        { return EntityEnum }
func (AggregateType) Kind() EntityKind   { return EntityAggregate }
func (ArrayType) Kind() EntityKind       { return EntityArray }
func (TelemetryPacket) Kind() EntityKind { return EntityPacket }
func (Command) Kind() EntityKind         { return EntityCommand }

func (e PrimitiveType) EntityName() string   { return e.Name }
func (e EnumType) EntityName() string        { return e.Name }
func (e AggregateType) EntityName() string   { return e.Name }
func (e ArrayType) EntityName() string       { return e.Name }
func (e TelemetryPacket) EntityName() string { return e.Name }
func (e Command) EntityName() string         { return e.Name }

// Schema is the translation result: entities in emission order plus the
// diagnostics gathered on the way.
type Schema struct {
	// Name is the MDB name.
	Name string
	// Entities in emission order. Every type referenced by an entity is
	// emitted before it.
	Entities []Entity
	// Diagnostics holds resolution and translation warnings.
	Diagnostics diagnostic.Diagnostics

	arraySizes map[string]int
}

// ArraySize returns the length of the named array type.
func (s *Schema) ArraySize(name string) (int, bool) {
	n, ok := s.arraySizes[name]
	return n, ok
}

// Names returns the entity names in emission order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Entities))
	for _, e := range s.Entities {
		names = append(names, e.EntityName())
	}

	return names
}

// EntitiesOf returns the entities of concrete type T, in emission order.
func EntitiesOf[T Entity](s *Schema) []T {
	var out []T

	for _, e := range s.Entities {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}

	return out
}
