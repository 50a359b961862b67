package fprime

import (
	"slices"

	"fprime-yamcs-mdb/internal/common"
)

// StripDeploymentPrefix returns a copy of dict in which every qualified name
// (type definitions, type references, channels and commands) has the
// leading "prefix." scope removed. The input is left untouched.
func StripDeploymentPrefix(dict *Dictionary, prefix string) *Dictionary {
	if prefix == "" {
		return dict
	}

	out := &Dictionary{
		Metadata:        dict.Metadata,
		TypeDefinitions: make([]TypeDefinition, 0, len(dict.TypeDefinitions)),
		Channels:        make([]ChannelDef, 0, len(dict.Channels)),
		Commands:        make([]CommandDef, 0, len(dict.Commands)),
	}

	for _, td := range dict.TypeDefinitions {
		td.QualifiedName = common.TrimQualifier(td.QualifiedName, prefix)
		td.ElementType = stripRef(td.ElementType, prefix)
		td.RepresentationType = stripRef(td.RepresentationType, prefix)
		td.UnderlyingType = stripRef(td.UnderlyingType, prefix)
		td.EnumeratedConstants = slices.Clone(td.EnumeratedConstants)

		if td.Members != nil {
			members := make(Members, len(td.Members))
			for i, m := range td.Members {
				m.Type = stripRef(m.Type, prefix)
				members[i] = m
			}

			td.Members = members
		}

		out.TypeDefinitions = append(out.TypeDefinitions, td)
	}

	for _, ch := range dict.Channels {
		ch.Name = common.TrimQualifier(ch.Name, prefix)
		ch.Type = stripRef(ch.Type, prefix)
		out.Channels = append(out.Channels, ch)
	}

	for _, cmd := range dict.Commands {
		cmd.Name = common.TrimQualifier(cmd.Name, prefix)

		params := make([]ParamDef, len(cmd.FormalParams))
		for i, p := range cmd.FormalParams {
			p.Type = stripRef(p.Type, prefix)
			params[i] = p
		}

		cmd.FormalParams = params
		out.Commands = append(out.Commands, cmd)
	}

	return out
}

// StripPacketPrefix does the same for the channel names of a packet list.
func StripPacketPrefix(list *PacketList, prefix string) *PacketList {
	if prefix == "" {
		return list
	}

	out := &PacketList{
		Name:      list.Name,
		Namespace: list.Namespace,
		Packets:   make([]PacketDef, 0, len(list.Packets)),
	}

	for _, p := range list.Packets {
		channels := make([]string, len(p.Channels))
		for i, ch := range p.Channels {
			channels[i] = common.TrimQualifier(ch, prefix)
		}

		p.Channels = channels
		out.Packets = append(out.Packets, p)
	}

	for _, ch := range list.Ignored {
		out.Ignored = append(out.Ignored, common.TrimQualifier(ch, prefix))
	}

	return out
}

func stripRef(ref *TypeRef, prefix string) *TypeRef {
	if ref == nil {
		return nil
	}

	cp := *ref
	cp.Name = common.TrimQualifier(cp.Name, prefix)

	return &cp
}
