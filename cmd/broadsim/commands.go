package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/zeunio/reactphysics3d/internal/broadphase"
	"github.com/zeunio/reactphysics3d/internal/config"
	"github.com/zeunio/reactphysics3d/internal/export"
	"github.com/zeunio/reactphysics3d/internal/metrics"
	"github.com/zeunio/reactphysics3d/internal/scene"
	"github.com/zeunio/reactphysics3d/internal/sim"
	"github.com/zeunio/reactphysics3d/internal/storage"
	"github.com/zeunio/reactphysics3d/internal/tui"
	"github.com/zeunio/reactphysics3d/internal/viz"
)

func sceneFromConfig(cfg *config.Config) *scene.Scene {
	return scene.New(scene.Params{
		Bodies:    cfg.Scene.Bodies,
		WorldSize: cfg.Scene.WorldSize,
		MaxSpeed:  cfg.Scene.MaxSpeed,
		BodySize:  cfg.Scene.BodySize,
		Seed:      cfg.Run.Seed,
		TableSize: cfg.Table.InitialSize,
	})
}

func runWorkload(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s := sceneFromConfig(cfg)
	runner := sim.New(s,
		metrics.NewAveragePairs(),
		metrics.NewPeakPairs(),
		metrics.NewChurn(),
		metrics.NewPeakChain(),
	)

	recorder := storage.NewRecorder()
	runner.AddEventSink(recorder)

	result, err := runner.Run(context.Background(), cfg.Run.Steps, cfg.Run.Dt)
	if err != nil {
		return err
	}

	if cfg.Table.ShrinkAfter {
		s.Pairs().Shrink()
		result.Final = s.Pairs().Stats()
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Preset: preset,
		Seed:   cfg.Run.Seed,
		Bodies: cfg.Scene.Bodies,
		Dt:     cfg.Run.Dt,
	}, result, recorder.Events())
	if err != nil {
		return err
	}

	fmt.Println(viz.RenderSummary(result))
	fmt.Println(viz.PlotCounts(result.Counts, 70, 12))
	fmt.Printf("saved run: %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(sceneFromConfig(cfg), cfg.Run.Dt, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tSTEPS\tPEAK\tADDED\tREMOVED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies, run.Steps, run.PeakPairs, run.TotalAdded, run.TotalRemoved)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	counts, err := store.LoadCounts(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.PlotCounts(counts, 70, 14))

	if svgOut != "" {
		svg := export.CountsToSVG(counts, 800, 300)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	events, err := store.LoadEvents(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta   *storage.RunMetadata `json:"meta"`
		Events []sim.PairEvent      `json:"events"`
	}{meta, events}

	data, err := sonnet.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

type benchBody struct {
	id uint32
}

func (b *benchBody) ID() uint32 { return b.id }

func runBench(cmd *cobra.Command, args []string) error {
	n := bodies
	if n < 1 {
		return fmt.Errorf("pairs must be positive")
	}

	bs := make([]*benchBody, 2*n)
	for i := range bs {
		bs[i] = &benchBody{id: uint32(i)}
	}
	m := broadphase.New()

	start := time.Now()
	for i := 0; i < n; i++ {
		m.AddPair(bs[i], bs[i+n])
	}
	addTime := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		m.FindPair(uint32(i), uint32(i+n))
	}
	findTime := time.Since(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		m.RemovePair(uint32(i), uint32(i+n))
	}
	removeTime := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tTOTAL\tPER OP")
	fmt.Fprintf(w, "add\t%v\t%v\n", addTime, addTime/time.Duration(n))
	fmt.Fprintf(w, "find\t%v\t%v\n", findTime, findTime/time.Duration(n))
	fmt.Fprintf(w, "remove\t%v\t%v\n", removeTime, removeTime/time.Duration(n))
	return w.Flush()
}
