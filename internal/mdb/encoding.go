package mdb

import (
	"fmt"
	"strconv"
	"strings"

	"fprime-yamcs-mdb/internal/gen"
)

// Engineering types.
const (
	engUint    = "uint"
	engInt     = "int"
	engFloat   = "float"
	engBool    = "boolean"
	engString  = "string"
	engEnum    = "enumerated"
	engBinary  = "binary"
	rawUint    = "uint"
	rawInt     = "int"
	rawFloat   = "float"
	rawString  = "string"
	bitsInByte = 8
)

// Encoding is the engineering type, raw type and encoding of a scalar.
type Encoding struct {
	EngType  string
	RawType  string
	Encoding string
}

// scalars maps F Prime builtin scalar names to their encodings.
var scalars = map[string]Encoding{
	"U8":  unsigned(8),
	"U16": unsigned(16),
	"U32": unsigned(32),
	"U64": unsigned(64),
	"I8":  signed(8),
	"I16": signed(16),
	"I32": signed(32),
	"I64": signed(64),
	"F32": float(32),
	"F64": float(64),
	"bool": {
		EngType:  engBool,
		RawType:  rawUint,
		Encoding: "unsigned(8)",
	},
}

func unsigned(bits int) Encoding {
	return Encoding{EngType: engUint, RawType: rawUint, Encoding: fmt.Sprintf("unsigned(%d)", bits)}
}

func signed(bits int) Encoding {
	return Encoding{EngType: engInt, RawType: rawInt, Encoding: fmt.Sprintf("twosComplement(%d)", bits)}
}

func float(bits int) Encoding {
	return Encoding{EngType: engFloat, RawType: rawFloat, Encoding: fmt.Sprintf("IEEE754_1985(%d)", bits)}
}

// fixedString encodes a string of size bytes.
func fixedString(size int) Encoding {
	return Encoding{EngType: engString, RawType: rawString, Encoding: "fixedString(" + strconv.Itoa(size*bitsInByte) + ")"}
}

// ScalarEncoding returns the encoding of a primitive. stringSize is the
// byte length of a synthetic string type, zero otherwise. Unknown names
// fall back to opaque binary and report false.
func ScalarEncoding(name string, stringSize int) (Encoding, bool) {
	if stringSize > 0 {
		return fixedString(stringSize), true
	}

	if enc, ok := scalars[name]; ok {
		return enc, true
	}

	return Encoding{EngType: engBinary, RawType: engBinary}, false
}

// aggregateType renders the engineering type of an aggregate, e.g. "{F32 x; F32 y}".
func aggregateType(members []gen.AggregateMember) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, m.Type+" "+m.Name)
	}

	return "{" + strings.Join(parts, "; ") + "}"
}

// arrayType renders the engineering type of an array of elem.
func arrayType(elem string) string {
	return elem + "[]"
}
