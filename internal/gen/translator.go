package gen

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fprime-yamcs-mdb/internal/analyze"
	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/match"
	"fprime-yamcs-mdb/internal/plan"
)

// TranslatorConfig holds configuration for schema translation.
type TranslatorConfig struct {
	// Strict turns unresolved references into a fatal error.
	Strict bool
	// MaxSuggestions caps "did you mean" suggestions for unknown channels.
	MaxSuggestions int
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// DefaultTranslatorConfig returns the default translator configuration.
func DefaultTranslatorConfig() TranslatorConfig {
	return TranslatorConfig{
		MaxSuggestions: match.DefaultMaxSuggestions,
	}
}

// Translator turns a ResolvedDictionary into a Schema.
type Translator struct {
	config TranslatorConfig
	logger *zap.Logger
}

// NewTranslator creates a Translator with the given configuration.
func NewTranslator(config TranslatorConfig) *Translator {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Translator{config: config, logger: logger}
}

// Translate emits the schema for d. Structural problems (recursive
// composites, malformed containment) abort translation; unknown channels
// and rejected commands are recorded as warnings.
func (t *Translator) Translate(d *plan.ResolvedDictionary) (*Schema, error) {
	if d == nil || d.Types == nil {
		return nil, errors.New("resolved dictionary is required")
	}

	s := &Schema{
		Name:       d.Name,
		arraySizes: make(map[string]int),
	}
	s.Diagnostics.Merge(d.Diagnostics)

	t.emitLeaves(s, d.Types)

	if err := t.emitComposites(s, d.Types); err != nil {
		return nil, err
	}

	t.emitPackets(s, d)

	if err := t.emitCommands(s, d); err != nil {
		return nil, err
	}

	t.logger.Info("translated schema",
		zap.String("name", s.Name),
		zap.Int("entities", len(s.Entities)),
		zap.Int("warnings", len(s.Diagnostics.Warnings)))

	if t.config.Strict {
		s.Diagnostics.Escalate(diagnostic.KindUnresolvedReference)

		if err := s.Diagnostics.Error(); err != nil {
			return s, fmt.Errorf("strict mode: %w", err)
		}
	}

	return s, nil
}

// emitLeaves is pass 1: natives, then enums over them, each in table order.
func (t *Translator) emitLeaves(s *Schema, table *analyze.TypeTable) {
	for _, td := range table.OfKind(analyze.TypeKindNative) {
		p := PrimitiveType{Name: td.Name}
		if td.Synthetic {
			p.StringSize = td.Size
		}

		s.Entities = append(s.Entities, p)
	}

	for _, td := range table.OfKind(analyze.TypeKindEnum) {
		e := EnumType{
			Name:     td.Name,
			ReprType: td.ReprType,
			Values:   make([]EnumValue, 0, len(td.Enumerators)),
		}
		for _, en := range td.Enumerators {
			e.Values = append(e.Values, EnumValue{Label: en.Name, Value: en.Value})
		}

		s.Entities = append(s.Entities, e)
	}
}

// emitComposites is pass 2: structs and arrays. A composite referencing
// another composite is emitted after it; otherwise table order is kept.
func (t *Translator) emitComposites(s *Schema, table *analyze.TypeTable) error {
	var composites []*analyze.TypeDescriptor

	index := make(map[string]int)

	for _, td := range table.Ordered() {
		if td.Kind == analyze.TypeKindStruct || td.Kind == analyze.TypeKindArray {
			index[td.Name] = len(composites)
			composites = append(composites, td)
		}
	}

	order, err := topoSort(len(composites), func(i int) []int {
		var deps []int

		for _, ref := range composites[i].Refs() {
			if j, ok := index[ref]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		var ce *cycleError
		if errors.As(err, &ce) {
			names := make([]string, 0, len(ce.nodes))
			for _, i := range ce.nodes {
				names = append(names, composites[i].Name)
			}

			return diagnostic.Malformed(names[0], "recursive composite types: %s", strings.Join(names, ", "))
		}

		return fmt.Errorf("ordering composite types: %w", err)
	}

	for _, i := range order {
		td := composites[i]

		switch td.Kind {
		case analyze.TypeKindStruct:
			a := AggregateType{Name: td.Name, Members: make([]AggregateMember, 0, len(td.Members))}
			for _, m := range td.Members {
				a.Members = append(a.Members, AggregateMember{Name: m.Name, Type: m.Type})
			}

			s.Entities = append(s.Entities, a)
		case analyze.TypeKindArray:
			s.Entities = append(s.Entities, ArrayType{Name: td.Name, ElemType: td.ElemType, Length: td.Size})
			s.arraySizes[td.Name] = td.Size
		}
	}

	t.logger.Debug("emitted composite types", zap.Int("composites", len(composites)))

	return nil
}

// emitPackets expands each packet into fields. Array-typed channels become
// repeated fields; channels missing from the dictionary get an empty type.
func (t *Translator) emitPackets(s *Schema, d *plan.ResolvedDictionary) {
	for _, p := range d.Packets {
		pkt := TelemetryPacket{ID: p.ID, Name: p.Name, Fields: make([]PacketField, 0, len(p.Channels))}

		for _, ch := range p.Channels {
			typ, ok := d.ChannelType(ch)
			if !ok {
				s.Diagnostics.AddWarning(diagnostic.KindUnresolvedReference,
					fmt.Sprintf("packet %s refers to unknown channel", p.Name), ch, p.Name)
				s.Diagnostics.Suggest(match.Suggest(ch, d.ChannelNames(), t.config.MaxSuggestions))

				pkt.Fields = append(pkt.Fields, PacketField{Name: ch})

				continue
			}

			field := PacketField{Name: ch, Type: typ}
			if n, isArray := s.arraySizes[typ]; isArray {
				field.Length = n
			}

			pkt.Fields = append(pkt.Fields, field)
		}

		s.Entities = append(s.Entities, pkt)
	}

	for _, ch := range d.Ignored {
		t.logger.Debug("channel ignored by packet layout", zap.String("channel", ch))
	}
}

// emitCommands emits every command whose arguments are all array-free.
// The first array-bearing argument rejects the whole command.
func (t *Translator) emitCommands(s *Schema, d *plan.ResolvedDictionary) error {
	rejected := 0

	for _, cmd := range d.Commands {
		params := make([]CommandParam, 0, len(cmd.Args))
		accepted := true

		for _, arg := range cmd.Args {
			hasArray, err := analyze.ContainsArray(arg.Type, d.Types)
			if err != nil {
				return fmt.Errorf("command %s: %w", cmd.Name, err)
			}

			if hasArray {
				s.Diagnostics.AddWarning(diagnostic.KindUnsupportedCommandArgument,
					fmt.Sprintf("argument %s has type %s which contains an array; command skipped", arg.Name, arg.Type),
					cmd.Name, arg.Type)

				accepted = false

				break
			}

			params = append(params, CommandParam{Name: arg.Name, Type: arg.Type})
		}

		if !accepted {
			rejected++
			continue
		}

		s.Entities = append(s.Entities, Command{Name: cmd.Name, Opcode: cmd.Opcode, Params: params})
	}

	t.logger.Debug("emitted commands",
		zap.Int("accepted", len(d.Commands)-rejected),
		zap.Int("rejected", rejected))

	return nil
}
