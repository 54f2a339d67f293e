package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/galois/config"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	verbose     bool
	configPath  string
	format      string
	maxModulus  int
	concurrency int

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "galois",
		Short: "Structure of the Galois group of the n-th cyclotomic field",
		Long: `galois computes the unit group (Z/nZ)×, which is the Galois group of the
n-th cyclotomic field over the rationals: its order φ(n), its decomposition
into cyclic factors, its subgroup lattice and its cycle graph.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	pf.StringVarP(&a.format, "format", "f", "", "Output format: text or yaml (overrides the config file)")
	pf.IntVar(&a.maxModulus, "max-modulus", 0, "Largest accepted modulus (overrides the config file)")
	pf.IntVar(&a.concurrency, "concurrency", 0, "Moduli computed at once (overrides the config file)")

	root.AddCommand(
		newGroupCmd(a),
		newLatticeCmd(a),
		newCyclesCmd(a),
		newReportCmd(a),
		newConfigCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("max-modulus") {
		cfg.Limits.MaxModulus = a.maxModulus
	}
	if flags.Changed("concurrency") {
		cfg.Compute.Concurrency = a.concurrency
	}
	if a.verbose {
		cfg.Log.Verbose = true
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "apply flags")
	}
	a.cfg = cfg

	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if cfg.Log.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if a.logger, err = zc.Build(); err != nil {
			return errors.Wrap(err, "initialize logger")
		}
	}

	return nil
}

func parseModuli(args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parse modulus %q", s)
		}
		ns[i] = n
	}

	return ns, nil
}
