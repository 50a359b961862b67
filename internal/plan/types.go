package plan

import (
	"fprime-yamcs-mdb/internal/analyze"
	"fprime-yamcs-mdb/internal/diagnostic"
)

// ResolvedDictionary is the final output of the resolution pipeline.
// It contains everything needed for schema translation and is not modified
// afterwards.
type ResolvedDictionary struct {
	// Name is the application (MDB) name.
	Name string
	// Types is the closed type table.
	Types *analyze.TypeTable
	// Channels in dictionary order.
	Channels []Channel
	// Commands in dictionary order.
	Commands []Command
	// Packets in document order.
	Packets []Packet
	// Ignored lists channels the packet document leaves out on purpose.
	Ignored []string
	// Diagnostics contains all warnings from resolution.
	Diagnostics diagnostic.Diagnostics

	channelIndex map[string]int
}

// ChannelType returns the resolved type of a channel and whether the channel exists.
func (d *ResolvedDictionary) ChannelType(name string) (string, bool) {
	i, ok := d.channelIndex[name]
	if !ok {
		return "", false
	}

	return d.Channels[i].Type, true
}

// ChannelNames returns all channel names in dictionary order.
func (d *ResolvedDictionary) ChannelNames() []string {
	names := make([]string, 0, len(d.Channels))
	for _, ch := range d.Channels {
		names = append(names, ch.Name)
	}

	return names
}

// Channel is a telemetry channel and its resolved type name.
type Channel struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Command is a command with its opcode and ordered arguments.
type Command struct {
	Name   string `yaml:"name"`
	Opcode int64  `yaml:"opcode"`
	Args   []Arg  `yaml:"args,omitempty"`
}

// Arg is a command argument. Argument order is positional order.
type Arg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Packet is a telemetry packet: an id, a name and its channel names.
type Packet struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name"`
	Channels []string `yaml:"channels"`
}
