package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fprime-yamcs-mdb/internal/cli/ui"
	"fprime-yamcs-mdb/internal/plan"
)

// Inspect output formats.
const (
	formatYAML = "yaml"
	formatDump = "dump"
)

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <artifacts-dir> <topology-dir>",
		Short: "Show the resolved dictionary without writing worksheets",
		Long: `Resolve an F Prime deployment and print the type table, channels,
commands and packets the generator would translate.

Formats:
  yaml  readable export of the resolved dictionary (default)
  dump  Go value dump of the same export, for debugging`,
		Args: cobra.ExactArgs(2),
		RunE: runInspect,
	}

	cmd.Flags().String("format", formatYAML, "Output format: yaml or dump")
	cmd.Flags().Bool("strict", false, "Fail on unresolved type references")
	cmd.Flags().String("strip-prefix", "", "Qualifier removed from names (default: deployment name)")
	cmd.Flags().Bool("no-strip", false, "Keep fully qualified names")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != formatYAML && format != formatDump {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatDump)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rd, err := resolveInputs(cfg, args[0], args[1], logger)
	if err != nil {
		return err
	}

	ui.WriteDiagnostics(cmd.ErrOrStderr(), rd.Diagnostics, cfg.NoColor)

	out := cmd.OutOrStdout()

	if format == formatDump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		dumper.Fdump(out, plan.Export(rd))

		return nil
	}

	data, err := plan.ExportYAML(rd)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", rd.Name, err)
	}

	_, err = out.Write(data)

	return err
}
