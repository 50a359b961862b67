package plan

import (
	"slices"

	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
)

// BuildPacketCatalog converts a packet list into packets, in document order.
// Two packets sharing an id are a NameCollision.
func BuildPacketCatalog(list *fprime.PacketList) ([]Packet, error) {
	if list == nil {
		return nil, nil
	}

	byID := make(map[int]string, len(list.Packets))
	packets := make([]Packet, 0, len(list.Packets))

	for _, def := range list.Packets {
		if prev, ok := byID[def.ID]; ok {
			return nil, diagnostic.Collision(def.Name, "packet id %d is already used by %s", def.ID, prev)
		}

		byID[def.ID] = def.Name

		packets = append(packets, Packet{
			ID:       def.ID,
			Name:     def.Name,
			Channels: slices.Clone(def.Channels),
		})
	}

	return packets, nil
}
