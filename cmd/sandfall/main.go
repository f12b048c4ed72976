package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sandfall/internal/config"
	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/gui"
	"github.com/san-kum/sandfall/internal/metrics"
	"github.com/san-kum/sandfall/internal/sandbox"
	"github.com/san-kum/sandfall/internal/store"
	"github.com/san-kum/sandfall/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	emitKind   string
	emitRate   float64
	record     bool
	live       bool
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sandfall",
		Short: "interactive falling-sand particle sandbox",
		RunE:  runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sandfall", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "config preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the sandbox window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless session with an emitter",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&emitKind, "kind", "", "emitter particle kind")
	runCmd.Flags().Float64Var(&emitRate, "rate", 0, "emitter particles per second")
	runCmd.Flags().BoolVar(&record, "record", false, "save session telemetry")
	runCmd.Flags().BoolVar(&live, "live", false, "render the run in the terminal")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "live view frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal sandbox mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list config presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, tuiCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			available := config.ListPresets()
			sort.Strings(available)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, available)
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the config file's emitter.
	if emitKind != "" {
		cfg.Emitter.Kind = emitKind
	}
	if emitRate > 0 {
		cfg.Emitter.Rate = emitRate
	}
	kind, err := cfg.EmitterKind()
	if err != nil {
		return err
	}

	box := sandbox.New(cfg.Rect())
	runner := sandbox.NewRunner(box)
	runner.AddEmitter(&sandbox.Emitter{
		Kind: kind,
		Pos:  geom.Vec2{X: cfg.Emitter.X, Y: cfg.Emitter.Y},
		Rate: cfg.Emitter.Rate,
	})

	runner.AddMetric(metrics.NewPopulation())
	runner.AddMetric(metrics.NewMeanPopulation())
	runner.AddMetric(metrics.NewSpawned())
	runner.AddMetric(metrics.NewEvicted())

	if live {
		runner.AddObserver(tui.NewLiveRenderer(frameRate))
	}

	result, err := runner.Run(context.Background(), sandbox.RunConfig{
		Dt:       float32(dt),
		Duration: duration,
	})
	if err != nil {
		return err
	}

	fmt.Printf("frames: %d\n\n", len(result.Frames))
	printMetrics(result.Metrics)

	if record {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(dt, duration, cfg.Emitter.Kind, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved session: %s\n", id)
	}

	return nil
}

func printMetrics(values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "metric\tvalue")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.2f\n", name, values[name])
	}
	w.Flush()
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no recorded sessions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttime\temitter\tduration\tpeak")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%.0f\n",
			s.ID, s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Emitter, s.Duration, s.Metrics["peak_population"])
	}
	return w.Flush()
}

func plotSession(cmd *cobra.Command, args []string) error {
	sessionID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(sessionID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(sessionID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("emitter: %s @ %.1fs dt=%.4f\n", meta.Emitter, meta.Duration, meta.Dt)
	fmt.Printf("samples: %d\n\n", len(frames))

	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = float64(f.Live)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles vs time"),
	)
	fmt.Println(graph)

	return nil
}
