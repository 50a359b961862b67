package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fprime-yamcs-mdb/internal/cli/ui"
	"fprime-yamcs-mdb/internal/gen"
	"fprime-yamcs-mdb/internal/mdb"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <artifacts-dir> <topology-dir> [output-dir]",
		Short: "Generate the mission database worksheets",
		Long: `Generate YAMCS mission database worksheets for an F Prime deployment.

<artifacts-dir> must contain <app>TopologyDictionary.json and <topology-dir>
must contain <app>Packets.xml with the same <app> name. The worksheets are
written to [output-dir] (default: output_dir from mdbgen.yaml, or ".") as
<app>_<Sheet>.csv.

Commands with an argument whose type contains an array are skipped and
reported. Unknown references are reported as warnings, or fail the run with
--strict.`,
		Example: `  fprime-yamcs-mdb generate build-artifacts/Linux/Ref/dict Ref/Top ./mdb
  fprime-yamcs-mdb generate dict top ./mdb --mdb-version 2.0 --strict`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runGenerate,
	}

	cmd.Flags().StringP("output-dir", "o", ".", "Directory the worksheets are written to")
	cmd.Flags().String("mdb-version", "1.0", "Document version written to the General sheet")
	cmd.Flags().Bool("strict", false, "Fail on unresolved type or channel references")
	cmd.Flags().String("strip-prefix", "", "Qualifier removed from names (default: deployment name)")
	cmd.Flags().Bool("no-strip", false, "Keep fully qualified names")
	cmd.Flags().String("delimiter", ",", "Worksheet field delimiter")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	outputDir := cfg.OutputDir
	if len(args) == 3 {
		outputDir = args[2]
	}

	rd, err := resolveInputs(cfg, args[0], args[1], logger)
	if err != nil {
		return err
	}

	tcfg := gen.DefaultTranslatorConfig()
	tcfg.Strict = cfg.Strict
	tcfg.Logger = logger

	schema, err := gen.NewTranslator(tcfg).Translate(rd)
	if err != nil {
		return fmt.Errorf("translating %s: %w", rd.Name, err)
	}

	ui.WriteDiagnostics(cmd.ErrOrStderr(), schema.Diagnostics, cfg.NoColor)

	files, err := mdb.NewRenderer(mdb.Options{
		Version:   cfg.MDBVersion,
		Delimiter: cfg.DelimiterRune(),
		Logger:    logger,
	}).Render(schema)
	if err != nil {
		return err
	}

	paths, err := mdb.WriteFiles(files, outputDir)
	if err != nil {
		return err
	}

	logger.Info("wrote worksheets", zap.Strings("files", paths))

	out := cmd.OutOrStdout()

	writeSummary(cmd, schema, cfg.NoColor)
	ui.WriteSuccess(out,
		fmt.Sprintf("YAMCS mission database worksheets saved in %s with prefix '%s'", outputDir, schema.Name),
		cfg.NoColor)

	return nil
}

// writeSummary prints the number of emitted entities per kind.
func writeSummary(cmd *cobra.Command, s *gen.Schema, noColor bool) {
	counts := make(map[gen.EntityKind]int)
	for _, e := range s.Entities {
		counts[e.Kind()]++
	}

	table := ui.NewTable(cmd.OutOrStdout(), []string{"KIND", "COUNT"}, noColor)

	for _, k := range []gen.EntityKind{
		gen.EntityPrimitive, gen.EntityEnum, gen.EntityAggregate,
		gen.EntityArray, gen.EntityPacket, gen.EntityCommand,
	} {
		table.AddRow(k.String(), strconv.Itoa(counts[k]))
	}

	table.Render()
}
