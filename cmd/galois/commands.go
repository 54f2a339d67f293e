package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/config"
	"github.com/katalvlaran/galois/cyclotomic"
)

func newGroupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "group N...",
		Short: "Order and cyclic decomposition of (Z/nZ)×",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, cyclotomic.WithoutLattice(), cyclotomic.WithoutCycleGraph())
		},
	}
}

func newLatticeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lattice N",
		Short: "Subgroup lattice of (Z/nZ)× with its covering relation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, cyclotomic.WithoutCycleGraph())
		},
	}
}

func newCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles N",
		Short: "Maximal cycles and edges of the cycle graph of (Z/nZ)×",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, cyclotomic.WithoutLattice())
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report N...",
		Short: "Everything about each modulus, computed concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(config.DefaultYAML))
			return err
		},
	}
}

// run computes every modulus in args and renders the results in order.
func (a *app) run(cmd *cobra.Command, args []string, extra ...cyclotomic.Option) error {
	ns, err := parseModuli(args)
	if err != nil {
		return err
	}
	opts := append(a.cfg.Options(), cyclotomic.WithLogger(a.logger))
	opts = append(opts, extra...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a.logger.Debug("computing", zap.String("command", cmd.Name()), zap.Ints("moduli", ns))
	results, err := cyclotomic.ComputeMany(ctx, ns, opts...)
	if err != nil {
		return errors.Wrapf(err, "%s %v", cmd.Name(), ns)
	}

	summaries := make([]cyclotomic.Summary, len(results))
	for i, r := range results {
		summaries[i] = r.Summary()
	}

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, summaries)
}
