package fprime

import (
	"encoding/json"
	"fmt"
	"os"

	"fprime-yamcs-mdb/internal/diagnostic"
)

// Type reference and definition kinds used by the F Prime dictionary format.
const (
	KindInteger             = "integer"
	KindFloat               = "float"
	KindBool                = "bool"
	KindString              = "string"
	KindQualifiedIdentifier = "qualifiedIdentifier"
	KindAlias               = "alias"
	KindNative              = "native"
	KindStruct              = "struct"
	KindArray               = "array"
	KindEnum                = "enum"
)

// Dictionary is the raw content of a TopologyDictionary.json file.
type Dictionary struct {
	Metadata        Metadata         `json:"metadata"`
	TypeDefinitions []TypeDefinition `json:"typeDefinitions"`
	Channels        []ChannelDef     `json:"telemetryChannels"`
	Commands        []CommandDef     `json:"commands"`
}

// Metadata describes the deployment the dictionary was generated for.
type Metadata struct {
	DeploymentName        string `json:"deploymentName"`
	ProjectVersion        string `json:"projectVersion"`
	FrameworkVersion      string `json:"frameworkVersion"`
	DictionarySpecVersion string `json:"dictionarySpecVersion"`
}

// TypeRef is an inline type reference, as found on members, parameters and channels.
type TypeRef struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Size   int    `json:"size,omitempty"`
	Signed *bool  `json:"signed,omitempty"`
}

// TypeDefinition is one entry of "typeDefinitions".
// Which fields are set depends on Kind.
type TypeDefinition struct {
	Kind          string `json:"kind"`
	QualifiedName string `json:"qualifiedName"`

	// struct
	Members Members `json:"members,omitempty"`

	// array
	Size        *int     `json:"size,omitempty"`
	ElementType *TypeRef `json:"elementType,omitempty"`

	// enum
	RepresentationType  *TypeRef   `json:"representationType,omitempty"`
	EnumeratedConstants []Constant `json:"enumeratedConstants,omitempty"`

	// alias
	UnderlyingType *TypeRef `json:"underlyingType,omitempty"`
}

// Constant is a single enumerator.
type Constant struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ChannelDef is one entry of "telemetryChannels".
type ChannelDef struct {
	Name string   `json:"name"`
	Type *TypeRef `json:"type"`
	ID   int64    `json:"id"`
}

// CommandDef is one entry of "commands".
type CommandDef struct {
	Name         string     `json:"name"`
	Opcode       *int64     `json:"opcode"`
	CommandKind  string     `json:"commandKind,omitempty"`
	FormalParams []ParamDef `json:"formalParams,omitempty"`
}

// ParamDef is a formal command parameter.
type ParamDef struct {
	Name string   `json:"name"`
	Type *TypeRef `json:"type"`
}

// LoadDictionary loads and parses a TopologyDictionary.json file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return ParseDictionary(data)
}

// ParseDictionary parses dictionary JSON and checks that every channel,
// command and parameter carries the fields the generator needs.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var dict Dictionary

	err := json.Unmarshal(data, &dict)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary JSON: %w", err)
	}

	if err := validateDictionary(&dict); err != nil {
		return nil, err
	}

	return &dict, nil
}

func validateDictionary(dict *Dictionary) error {
	for i, ch := range dict.Channels {
		if ch.Name == "" {
			return diagnostic.Malformed(fmt.Sprintf("telemetryChannels[%d]", i), "channel has no name")
		}

		if err := validateRef(ch.Name, ch.Type); err != nil {
			return err
		}
	}

	for i, cmd := range dict.Commands {
		if cmd.Name == "" {
			return diagnostic.Malformed(fmt.Sprintf("commands[%d]", i), "command has no name")
		}

		if cmd.Opcode == nil {
			return diagnostic.Malformed(cmd.Name, "command has no opcode")
		}

		for _, p := range cmd.FormalParams {
			if p.Name == "" {
				return diagnostic.Malformed(cmd.Name, "formal parameter has no name")
			}

			if err := validateRef(cmd.Name+"."+p.Name, p.Type); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateRef(owner string, ref *TypeRef) error {
	if ref == nil {
		return diagnostic.Malformed(owner, "missing type")
	}

	if ref.Name == "" {
		return diagnostic.Malformed(owner, "type reference has no name")
	}

	return nil
}
