package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/siherrmann/thinkermap/core/layout"
	"github.com/siherrmann/thinkermap/core/metrics"
	"github.com/siherrmann/thinkermap/model"
	"github.com/spf13/cobra"
)

// options shared by all commands
type options struct {
	snapshotPath string
	configPath   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "thinkermap",
		Short: "Analyze and lay out the network of thinkers",
		Long: `thinkermap computes network statistics, shortest paths and connection map
layouts for a catalogue of thinkers. The snapshot is read from a JSON file
or from the PostgreSQL database configured by THINKERMAP_DB_* variables.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.snapshotPath, "snapshot", "s", "", "JSON snapshot file, the database is used if empty")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML file overlaying the default configuration")

	rootCmd.AddCommand(newStatsCmd(opts), newPathCmd(opts), newLayoutCmd(opts))

	return rootCmd
}

func newStatsCmd(opts *options) *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print network statistics, rankings and clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				config.Analysis.TopK = topK
			}

			snapshot, err := loadSnapshot(cmd.Context(), opts.snapshotPath)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), metrics.Analyze(snapshot, config.Analysis))
		},
	}

	cmd.Flags().IntVarP(&topK, "top", "k", metrics.DefaultTopK, "Number of thinkers in each ranking")

	return cmd
}

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path [from-id] [to-id]",
		Short: "Print a shortest chain of connections between two thinkers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(cmd.Context(), opts.snapshotPath)
			if err != nil {
				return err
			}

			path := metrics.FindShortestPath(args[0], args[1], snapshot.Thinkers, snapshot.Connections)
			if path == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No path between %s and %s\n", args[0], args[1])
				return nil
			}

			return writeJSON(cmd.OutOrStdout(), path)
		},
	}
}

func newLayoutCmd(opts *options) *cobra.Command {
	var depth int
	var types []string

	cmd := &cobra.Command{
		Use:   "layout [center-id]",
		Short: "Print the connection map layout around a thinker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("depth") {
				config.Map.MaxDepth = depth
			}
			if cmd.Flags().Changed("types") {
				config.Map.VisibleTypes = nil
				for _, t := range types {
					connectionType, err := model.ParseConnectionType(t)
					if err != nil {
						return err
					}
					config.Map.VisibleTypes = append(config.Map.VisibleTypes, connectionType)
				}
			}

			snapshot, err := loadSnapshot(cmd.Context(), opts.snapshotPath)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), layout.BuildMap(args[0], snapshot, &config.Map))
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", model.DefaultMapConfig().MaxDepth, "Maximum number of hops from the center")
	cmd.Flags().StringSliceVarP(&types, "types", "t", nil, "Visible connection types, all if empty")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
