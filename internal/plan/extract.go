package plan

import (
	"fprime-yamcs-mdb/internal/analyze"
	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
)

// ExtractChannels resolves the type of every channel, in dictionary order.
func ExtractChannels(defs []fprime.ChannelDef, in *analyze.Interner) ([]Channel, error) {
	seen := make(map[string]bool, len(defs))
	channels := make([]Channel, 0, len(defs))

	for _, def := range defs {
		if seen[def.Name] {
			return nil, diagnostic.Collision(def.Name, "channel is declared twice")
		}

		seen[def.Name] = true

		typeName, err := in.Intern(def.Name, def.Type)
		if err != nil {
			return nil, err
		}

		channels = append(channels, Channel{Name: def.Name, Type: typeName})
	}

	return channels, nil
}

// ExtractCommands resolves every command's argument types, keeping
// parameter order. Commands without parameters get an empty argument list.
func ExtractCommands(defs []fprime.CommandDef, in *analyze.Interner) ([]Command, error) {
	seen := make(map[string]bool, len(defs))
	commands := make([]Command, 0, len(defs))

	for _, def := range defs {
		if seen[def.Name] {
			return nil, diagnostic.Collision(def.Name, "command is declared twice")
		}

		seen[def.Name] = true

		if def.Opcode == nil {
			return nil, diagnostic.Malformed(def.Name, "command has no opcode")
		}

		cmd := Command{
			Name:   def.Name,
			Opcode: *def.Opcode,
			Args:   make([]Arg, 0, len(def.FormalParams)),
		}

		for _, p := range def.FormalParams {
			typeName, err := in.Intern(def.Name+"."+p.Name, p.Type)
			if err != nil {
				return nil, err
			}

			cmd.Args = append(cmd.Args, Arg{Name: p.Name, Type: typeName})
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}
