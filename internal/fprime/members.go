package fprime

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// Member is a struct member. Members are kept in declaration order.
type Member struct {
	Name  string
	Type  *TypeRef
	Index *int
}

// Members is the ordered member list of a struct definition.
// It decodes from the dictionary's JSON object form without losing key order.
type Members []Member

type memberBody struct {
	Type  *TypeRef `json:"type"`
	Index *int     `json:"index"`
}

// UnmarshalJSON decodes the member object token by token so that the
// declared order survives. When every member carries an index, the list is
// ordered by it.
func (m *Members) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("struct members must be an object, got %v", tok)
	}

	out := Members{}
	indexed := true

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected member key %v", tok)
		}

		var body memberBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("member %s: %w", name, err)
		}

		if body.Index == nil {
			indexed = false
		}

		out = append(out, Member{Name: name, Type: body.Type, Index: body.Index})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	if indexed {
		slices.SortStableFunc(out, func(a, b Member) int {
			return cmp.Compare(*a.Index, *b.Index)
		})
	}

	*m = out

	return nil
}

// MarshalJSON writes the members back as an object in list order.
func (m Members) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, mem := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(mem.Name)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(memberBody{Type: mem.Type, Index: mem.Index})
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
