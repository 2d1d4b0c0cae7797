package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqorder/instance"
	"github.com/katalvlaran/seqorder/search"
	"github.com/katalvlaran/seqorder/sop"
)

// flagValues mirrors Config for flags that override file values only when set.
type flagValues struct {
	configPath  string
	strategy    string
	noDominance bool
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "sopsolve <instance> [seconds]",
		Short: "Solve a Sequential Ordering Problem instance",
		Long: `sopsolve explores the forward SOP search tree depth-first with
bound and prefix-equivalence pruning, printing the best tour found
within the time budget (0 or omitted means run to completion).

Expansion strategies:
  total    generate every feasible child of a node at once
  partial  generate children lazily by ascending arc cost`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv, args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return solve(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&fv.configPath, "config", "c", "", "YAML run configuration")
	cmd.Flags().StringVarP(&fv.strategy, "strategy", "s", sop.Partial.String(), "children expansion strategy: total or partial")
	cmd.Flags().BoolVar(&fv.noDominance, "no-dominance", false, "disable prefix-equivalence pruning")
	cmd.Flags().StringVar(&fv.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&fv.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// resolveConfig layers defaults, the optional config file, positional
// arguments and explicitly set flags, then validates the result.
func resolveConfig(cmd *cobra.Command, fv flagValues, args []string) (Config, error) {
	var (
		cfg = DefaultConfig()
		err error
	)
	if fv.configPath != "" {
		if cfg, err = LoadConfig(fv.configPath); err != nil {
			return cfg, err
		}
	}

	if len(args) > 0 {
		cfg.Instance = args[0]
	}
	if len(args) > 1 {
		if cfg.TimeLimit, err = strconv.ParseFloat(args[1], 64); err != nil {
			return cfg, fmt.Errorf("time budget %q: not a number of seconds", args[1])
		}
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") || fv.configPath == "" {
		cfg.Strategy = strings.ToLower(fv.strategy)
	}
	if flags.Changed("no-dominance") {
		cfg.NoDominance = fv.noDominance
	}
	if flags.Changed("log-level") || fv.configPath == "" {
		cfg.Log.Level = fv.logLevel
	}
	if flags.Changed("log-format") || fv.configPath == "" {
		cfg.Log.Format = fv.logFormat
	}

	return cfg, cfg.Validate()
}

// solve loads the instance, runs the search and prints the result.
func solve(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}
	strategy, err := sop.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	inst, err := instance.Load(cfg.Instance)
	if err != nil {
		return err
	}
	if perr := inst.CheckPrecedence(); perr != nil {
		logger.Warn("instance has no feasible tour", slog.String("reason", perr.Error()))
	}
	logger.Info("instance loaded",
		slog.String("name", inst.Name()),
		slog.Int("locations", inst.N()),
		slog.String("strategy", strategy.String()),
		slog.Duration("budget", cfg.Budget()),
	)

	space, err := sop.New(inst, strategy)
	if err != nil {
		return err
	}
	var exp search.Expander[*sop.ForwardNode]
	if strategy == sop.Partial {
		exp = search.Partial[*sop.ForwardNode](space)
	} else {
		exp = search.Total[*sop.ForwardNode](space, space)
	}

	dfs, err := search.NewDFS[*sop.ForwardNode, []int, sop.ForwardNodePE](space, exp,
		search.WithTimeLimit(cfg.Budget()),
		search.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if !cfg.NoDominance {
		dfs.WithDominance(space)
	}

	res, err := dfs.Run(ctx)
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			fmt.Fprintln(stdout, "no feasible tour")
		}
		return err
	}
	if !res.Found {
		fmt.Fprintln(stdout, "no tour found within the time budget")
		return nil
	}

	fmt.Fprintf(stdout, "cost: %d\n", res.Cost)
	fmt.Fprintf(stdout, "optimal: %t\n", res.Complete)
	fmt.Fprintf(stdout, "tour: %s\n", joinInts(res.Solution))

	return nil
}

func joinInts(xs []int) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}
