package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fprime-yamcs-mdb/internal/cli/config"
	"fprime-yamcs-mdb/internal/fprime"
	"fprime-yamcs-mdb/internal/plan"
)

// configDir is where mdbgen.yaml is looked up.
var configDir = "."

// loadConfig merges mdbgen.yaml, the environment and the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configDir, cmd.Flags())
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger logs warnings and above to stderr, or everything in development
// format when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zcfg.Build()
}

// resolveInputs finds, loads and resolves one deployment.
func resolveInputs(cfg *config.Config, artifactsDir, topologyDir string, logger *zap.Logger) (*plan.ResolvedDictionary, error) {
	inputs, err := fprime.FindInputs(artifactsDir, topologyDir)
	if err != nil {
		return nil, err
	}

	logger.Info("found inputs",
		zap.String("name", inputs.Name),
		zap.String("dictionary", inputs.DictionaryPath),
		zap.String("packets", inputs.PacketsPath))

	dict, err := fprime.LoadDictionary(inputs.DictionaryPath)
	if err != nil {
		return nil, err
	}

	packets, err := fprime.LoadPackets(inputs.PacketsPath)
	if err != nil {
		return nil, err
	}

	deployment := dict.Metadata.DeploymentName
	if deployment == "" {
		deployment = inputs.Name
	}

	rcfg := plan.DefaultConfig()
	rcfg.Name = inputs.Name
	rcfg.StripPrefix = cfg.Prefix(deployment)
	rcfg.StrictMode = cfg.Strict
	rcfg.Logger = logger

	rd, err := plan.NewResolver(dict, packets, rcfg).Resolve()
	if err != nil {
		return rd, fmt.Errorf("resolving %s: %w", inputs.Name, err)
	}

	return rd, nil
}
