package mdb

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"fprime-yamcs-mdb/internal/gen"
)

// Options holds configuration for worksheet rendering.
type Options struct {
	// Version is the document version written to the General sheet.
	Version string
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Version:   "1.0",
		Delimiter: ',',
	}
}

// File is a rendered worksheet.
type File struct {
	// Filename is the name of the file (e.g., "Ref_DataTypes.csv").
	Filename string
	// Content is the delimited sheet content.
	Content []byte
}

// Renderer turns a schema into worksheet files.
type Renderer struct {
	opts   Options
	logger *zap.Logger
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renderer{opts: opts, logger: logger}
}

// Render produces one file per sheet, in Sheets order.
func (r *Renderer) Render(s *gen.Schema) ([]File, error) {
	if s == nil {
		return nil, errors.New("schema is required")
	}

	if s.Name == "" {
		return nil, errors.New("schema has no MDB name")
	}

	rows := map[Sheet][][]string{
		SheetGeneral:    {{FormatVersion, s.Name, r.opts.Version}},
		SheetDataTypes:  dataTypeRows(s, r.logger),
		SheetEnumValues: enumValueRows(s),
		SheetParameters: parameterRows(s),
		SheetContainers: containerRows(s),
		SheetCommands:   commandRows(s),
	}

	files := make([]File, 0, len(Sheets))

	for _, sheet := range Sheets {
		content, err := r.encode(append([][]string{headers[sheet]}, rows[sheet]...))
		if err != nil {
			return nil, fmt.Errorf("rendering %s sheet: %w", sheet, err)
		}

		files = append(files, File{Filename: Filename(s.Name, sheet), Content: content})

		r.logger.Debug("rendered sheet", zap.String("sheet", string(sheet)), zap.Int("rows", len(rows[sheet])))
	}

	return files, nil
}

func (r *Renderer) encode(records [][]string) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = r.opts.Delimiter

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func dataTypeRows(s *gen.Schema, logger *zap.Logger) [][]string {
	var rows [][]string

	encodings := make(map[string]Encoding)

	for _, e := range s.Entities {
		switch v := e.(type) {
		case gen.PrimitiveType:
			enc, known := ScalarEncoding(v.Name, v.StringSize)
			if !known {
				logger.Warn("no encoding for native type, using binary", zap.String("type", v.Name))
			}

			encodings[v.Name] = enc
			rows = append(rows, []string{v.Name, enc.EngType, enc.RawType, enc.Encoding})
		case gen.EnumType:
			repr := encodings[v.ReprType]
			rows = append(rows, []string{v.Name, engEnum, repr.RawType, repr.Encoding})
		case gen.AggregateType:
			rows = append(rows, []string{v.Name, aggregateType(v.Members), "", ""})
		case gen.ArrayType:
			rows = append(rows, []string{v.Name, arrayType(v.ElemType), "", ""})
		}
	}

	return rows
}

func enumValueRows(s *gen.Schema) [][]string {
	var rows [][]string

	for _, e := range gen.EntitiesOf[gen.EnumType](s) {
		for _, v := range e.Values {
			rows = append(rows, []string{e.Name, strconv.FormatInt(v.Value, 10), v.Label})
		}
	}

	return rows
}

// parameterRows lists each resolved packet channel once, in first-use order.
func parameterRows(s *gen.Schema) [][]string {
	var rows [][]string

	seen := make(map[string]bool)

	for _, p := range gen.EntitiesOf[gen.TelemetryPacket](s) {
		for _, f := range p.Fields {
			if f.Type == "" || seen[f.Name] {
				continue
			}

			seen[f.Name] = true
			rows = append(rows, []string{f.Name, f.Type, "telemetered"})
		}
	}

	return rows
}

// containerRows writes one row per field; the first row of a container
// carries its name and condition. Unresolved fields are left out.
func containerRows(s *gen.Schema) [][]string {
	var rows [][]string

	for _, p := range gen.EntitiesOf[gen.TelemetryPacket](s) {
		name, cond := p.Name, "packetId=="+strconv.Itoa(p.ID)
		first := true

		for _, f := range p.Fields {
			if f.Type == "" {
				continue
			}

			length := ""
			if f.IsArray() {
				length = strconv.Itoa(f.Length)
			}

			if first {
				rows = append(rows, []string{name, cond, f.Name, f.Type, length})
				first = false

				continue
			}

			rows = append(rows, []string{"", "", f.Name, f.Type, length})
		}

		if first {
			rows = append(rows, []string{name, cond, "", "", ""})
		}
	}

	return rows
}

// commandRows writes one row per argument; the first row of a command
// carries its name and opcode assignment.
func commandRows(s *gen.Schema) [][]string {
	var rows [][]string

	for _, c := range gen.EntitiesOf[gen.Command](s) {
		assignment := "opcode=" + strconv.FormatInt(c.Opcode, 10)

		if len(c.Params) == 0 {
			rows = append(rows, []string{c.Name, assignment, "", ""})
			continue
		}

		for i, p := range c.Params {
			if i == 0 {
				rows = append(rows, []string{c.Name, assignment, p.Name, p.Type})
				continue
			}

			rows = append(rows, []string{"", "", p.Name, p.Type})
		}
	}

	return rows
}
