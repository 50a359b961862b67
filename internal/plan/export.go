package plan

import (
	"gopkg.in/yaml.v3"

	"fprime-yamcs-mdb/internal/analyze"
)

// ExportedDictionary is the YAML view of a ResolvedDictionary, used to
// review what the generator will translate.
type ExportedDictionary struct {
	Name     string                    `yaml:"name"`
	Types    []*analyze.TypeDescriptor `yaml:"types"`
	Channels []Channel                 `yaml:"channels"`
	Commands []Command                 `yaml:"commands"`
	Packets  []Packet                  `yaml:"packets"`
	Ignored  []string                  `yaml:"ignored,omitempty"`
	Warnings []string                  `yaml:"warnings,omitempty"`
}

// Export builds the exported view of a resolved dictionary.
func Export(d *ResolvedDictionary) *ExportedDictionary {
	out := &ExportedDictionary{
		Name:     d.Name,
		Types:    d.Types.Ordered(),
		Channels: d.Channels,
		Commands: d.Commands,
		Packets:  d.Packets,
		Ignored:  d.Ignored,
	}

	for _, w := range d.Diagnostics.Warnings {
		out.Warnings = append(out.Warnings, w.String())
	}

	return out
}

// ExportYAML renders a resolved dictionary as YAML.
func ExportYAML(d *ResolvedDictionary) ([]byte, error) {
	return yaml.Marshal(Export(d))
}
