package fprime

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fprime-yamcs-mdb/internal/diagnostic"
)

// PacketList is the content of a Packets.xml file.
type PacketList struct {
	Name      string
	Namespace string
	Packets   []PacketDef
	// Ignored lists channels the topology explicitly leaves out of every packet.
	Ignored []string
}

// PacketDef is one <packet> element, in document order.
type PacketDef struct {
	ID       int
	Name     string
	Level    int
	Channels []string
}

type packetsXML struct {
	XMLName   xml.Name    `xml:"packets"`
	Name      string      `xml:"name,attr"`
	Namespace string      `xml:"namespace,attr"`
	Packets   []packetXML `xml:"packet"`
	Ignore    struct {
		Channels []channelXML `xml:"channel"`
	} `xml:"ignore"`
}

type packetXML struct {
	Name     string       `xml:"name,attr"`
	ID       string       `xml:"id,attr"`
	Level    string       `xml:"level,attr"`
	Channels []channelXML `xml:"channel"`
}

type channelXML struct {
	Name string `xml:"name,attr"`
}

// LoadPackets loads and parses a Packets.xml file.
func LoadPackets(path string) (*PacketList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packets file %s: %w", path, err)
	}

	return ParsePackets(data)
}

// ParsePackets parses packet-layout XML. Packet ids must be integers.
func ParsePackets(data []byte) (*PacketList, error) {
	var doc packetsXML

	err := xml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse packets XML: %w", err)
	}

	list := &PacketList{
		Name:      doc.Name,
		Namespace: doc.Namespace,
		Packets:   make([]PacketDef, 0, len(doc.Packets)),
	}

	for i, p := range doc.Packets {
		name := p.Name
		if name == "" {
			return nil, diagnostic.Malformed(fmt.Sprintf("packet[%d]", i), "packet has no name")
		}

		id, err := strconv.Atoi(strings.TrimSpace(p.ID))
		if err != nil {
			return nil, diagnostic.Malformed(name, "packet id %q is not an integer", p.ID)
		}

		level := 0
		if p.Level != "" {
			level, err = strconv.Atoi(strings.TrimSpace(p.Level))
			if err != nil {
				return nil, diagnostic.Malformed(name, "packet level %q is not an integer", p.Level)
			}
		}

		def := PacketDef{ID: id, Name: name, Level: level}
		for _, ch := range p.Channels {
			if ch.Name == "" {
				return nil, diagnostic.Malformed(name, "packet channel has no name")
			}

			def.Channels = append(def.Channels, ch.Name)
		}

		list.Packets = append(list.Packets, def)
	}

	for _, ch := range doc.Ignore.Channels {
		list.Ignored = append(list.Ignored, ch.Name)
	}

	return list, nil
}
