package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeunio/reactphysics3d/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	bodies     int
	worldSize  float64
	maxSpeed   float64
	bodySize   float64
	steps      int
	dt         float64
	seed       int64
	tableSize  int
	shrink     bool
	frameRate  int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "broadsim",
		Short: "broad-phase pair manager workbench",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".broadsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene workload and save the results",
		RunE:  runWorkload,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	runCmd.Flags().BoolVar(&shrink, "shrink", false, "shrink the table after the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step a scene live in the terminal",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's pair-count series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the plot to an SVG file")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run's metadata and event journal as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time pair add/find/remove against a synthetic set",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&bodies, "pairs", 4096, "number of pairs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies")
	cmd.Flags().Float64Var(&worldSize, "world", config.DefaultWorldSize, "world half-extent")
	cmd.Flags().Float64Var(&maxSpeed, "speed", config.DefaultMaxSpeed, "maximum body speed")
	cmd.Flags().Float64Var(&bodySize, "size", config.DefaultBodySize, "body half-extent")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&tableSize, "table", config.DefaultTableSize, "initial bucket count")
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("bodies") {
		cfg.Scene.Bodies = bodies
	}
	if cmd.Flags().Changed("world") {
		cfg.Scene.WorldSize = worldSize
	}
	if cmd.Flags().Changed("speed") {
		cfg.Scene.MaxSpeed = maxSpeed
	}
	if cmd.Flags().Changed("size") {
		cfg.Scene.BodySize = bodySize
	}
	if cmd.Flags().Changed("steps") {
		cfg.Run.Steps = steps
	}
	if cmd.Flags().Changed("dt") {
		cfg.Run.Dt = dt
	}
	if cmd.Flags().Changed("seed") || cfg.Run.Seed == 0 {
		cfg.Run.Seed = seed
	}
	if cmd.Flags().Changed("table") {
		cfg.Table.InitialSize = tableSize
	}
	if cmd.Flags().Changed("shrink") {
		cfg.Table.ShrinkAfter = shrink
	}

	return cfg, nil
}
