package plan

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fprime-yamcs-mdb/internal/analyze"
	"fprime-yamcs-mdb/internal/diagnostic"
	"fprime-yamcs-mdb/internal/fprime"
	"fprime-yamcs-mdb/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Name is the application name recorded on the result.
	Name string
	// StripPrefix is removed (with its trailing dot) from every qualified name.
	// Empty disables stripping.
	StripPrefix string
	// StrictMode fails resolution when any reference is unresolved.
	StrictMode bool
	// MaxSuggestions caps "did you mean" suggestions per unresolved name.
	MaxSuggestions int
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		StrictMode:     false,
		MaxSuggestions: match.DefaultMaxSuggestions,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	dict    *fprime.Dictionary
	packets *fprime.PacketList
	config  ResolutionConfig
	logger  *zap.Logger
}

// NewResolver creates a Resolver over a loaded dictionary and packet list.
// packets may be nil when no packet document is available.
func NewResolver(dict *fprime.Dictionary, packets *fprime.PacketList, config ResolutionConfig) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		dict:    dict,
		packets: packets,
		config:  config,
		logger:  logger,
	}
}

// Resolve runs the full resolution pipeline and returns a ResolvedDictionary.
// Structural errors (MalformedInput, NameCollision) abort resolution.
func (r *Resolver) Resolve() (*ResolvedDictionary, error) {
	if r.dict == nil {
		return nil, errors.New("dictionary is required")
	}

	dict := fprime.StripDeploymentPrefix(r.dict, r.config.StripPrefix)
	packets := r.packets

	if packets != nil {
		packets = fprime.StripPacketPrefix(packets, r.config.StripPrefix)
	}

	interner := analyze.NewInterner()

	table, err := analyze.NewResolver(interner).Resolve(dict.TypeDefinitions)
	if err != nil {
		return nil, fmt.Errorf("resolving types: %w", err)
	}

	r.logger.Debug("resolved type definitions", zap.Int("types", table.Len()))

	channels, err := ExtractChannels(dict.Channels, interner)
	if err != nil {
		return nil, fmt.Errorf("extracting channels: %w", err)
	}

	commands, err := ExtractCommands(dict.Commands, interner)
	if err != nil {
		return nil, fmt.Errorf("extracting commands: %w", err)
	}

	if err := interner.Materialize(table); err != nil {
		return nil, fmt.Errorf("materializing native types: %w", err)
	}

	r.logger.Debug("materialized native types",
		zap.Int("natives", interner.Len()),
		zap.Strings("strings", interner.StringTypes()))

	result := &ResolvedDictionary{
		Name:         r.config.Name,
		Types:        table,
		Channels:     channels,
		Commands:     commands,
		channelIndex: make(map[string]int, len(channels)),
	}

	for i, ch := range channels {
		result.channelIndex[ch.Name] = i
	}

	if packets != nil {
		result.Packets, err = BuildPacketCatalog(packets)
		if err != nil {
			return nil, fmt.Errorf("building packet catalog: %w", err)
		}

		result.Ignored = packets.Ignored
	}

	r.reportUnresolved(result)

	r.logger.Info("resolved dictionary",
		zap.Int("types", table.Len()),
		zap.Int("channels", len(channels)),
		zap.Int("commands", len(commands)),
		zap.Int("packets", len(result.Packets)),
		zap.Int("warnings", len(result.Diagnostics.Warnings)))

	if r.config.StrictMode {
		result.Diagnostics.Escalate(diagnostic.KindUnresolvedReference)

		if err := result.Diagnostics.Error(); err != nil {
			return result, fmt.Errorf("strict mode: %w", err)
		}
	}

	return result, nil
}

// reportUnresolved records a warning for every type reference that names
// no table entry. Packet channels are checked during translation.
func (r *Resolver) reportUnresolved(d *ResolvedDictionary) {
	diags := &d.Diagnostics

	unknown := func(subject, typeName, what string) {
		diags.AddWarning(diagnostic.KindUnresolvedReference,
			fmt.Sprintf("%s refers to undefined type %s", what, typeName), subject, typeName)
		diags.Suggest(match.Suggest(typeName, d.Types.Names, r.config.MaxSuggestions))
	}

	for _, ref := range d.Types.Unresolved() {
		unknown(ref.Owner, ref.Name, "type")
	}

	for _, ch := range d.Channels {
		if !d.Types.Has(ch.Type) {
			unknown(ch.Name, ch.Type, "channel")
		}
	}

	for _, cmd := range d.Commands {
		for _, arg := range cmd.Args {
			if !d.Types.Has(arg.Type) {
				unknown(cmd.Name, arg.Type, "argument "+arg.Name)
			}
		}
	}
}
