package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/mapdata"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/server"
)

// flags shared by every subcommand.
type rootFlags struct {
	configPath string
	mapPath    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "A* route planner for road-network extracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Path to the YAML configuration file")
	root.PersistentFlags().StringVarP(&f.mapPath, "map", "m", "", "Map extract (.yaml, .json) or snapshot (.gob); overrides map.path")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log.level")

	root.AddCommand(newRouteCmd(&f), newServeCmd(&f), newSnapshotCmd(), newStatsCmd(&f))

	return root
}

// loadConfig applies command-line overrides on top of config.Load.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.mapPath != "" {
		cfg.Map.Path = f.mapPath
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newRouteCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "route <start-x> <start-y> <end-x> <end-y>",
		Short: "Plan one route; coordinates are percent of the map extent (0-100)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, a := range args {
				x, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				v[i] = x
			}

			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())
			_, p, err := buildPlanner(cfg, logger)
			if err != nil {
				return err
			}

			route, err := p.Plan(cmd.Context(), planner.Query{StartX: v[0], StartY: v[1], EndX: v[2], EndY: v[3]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !route.Found {
				fmt.Fprintf(out, "no route from node %d to node %d\n", route.Start.ID, route.Goal.ID)
				return nil
			}
			fmt.Fprintf(out, "route %d → %d: %.1f m, %d nodes, %d expanded\n",
				route.Start.ID, route.Goal.ID, route.DistanceMeters, route.Path.Len(), route.Expanded)
			for _, n := range route.Path.Nodes {
				fmt.Fprintf(out, "  %d\t%.6f\t%.6f\n", n.ID, n.X, n.Y)
			}

			return nil
		},
	}
}

func newServeCmd(f *rootFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logger := cfg.Logger(cmd.ErrOrStderr())

			started := time.Now()
			m, p, err := buildPlanner(cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("map loaded", "path", cfg.Map.Path, "nodes", m.Len(), "ways", m.WayCount(),
				"metric_scale", m.MetricScale(), "elapsed", time.Since(started))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(p, server.WithLogger(logger), server.WithCORSOrigins(cfg.Server.CORSOrigins...))

			return srv.Run(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides server.addr")

	return cmd
}

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <extract> <out.gob>",
		Short: "Project an extract once and store it as a gob snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := mapdata.Load(args[0])
			if err != nil {
				return err
			}
			data, err := e.ProviderData()
			if err != nil {
				return err
			}
			if err := mapdata.SaveSnapshot(args[1], data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes, %d ways\n", args[1], len(data.Nodes), len(data.Ways))

			return nil
		},
	}
}

func newStatsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the size of the routable model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}
			m, err := loadModel(cfg)
			if err != nil {
				return err
			}
			b := m.Bounds()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:        %d\n", m.Len())
			fmt.Fprintf(out, "ways:         %d\n", m.WayCount())
			fmt.Fprintf(out, "metric scale: %.3f m\n", m.MetricScale())
			fmt.Fprintf(out, "bounds:       lat [%.5f, %.5f] lon [%.5f, %.5f]\n", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)

			return nil
		},
	}
}
