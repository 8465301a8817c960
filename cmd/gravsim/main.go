package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/logging"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	frameRate  int
	// headless run
	frames     int
	track      int
	traceOut   bool
	traceEvery int
	svgOut     string
	integrator string
	capture    bool
)

// main registers the command tree. With no subcommand the window opens.
func main() {
	rootCmd := &cobra.Command{
		Use:           "gravsim",
		Short:         "particles falling around fixed gravity sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory for traces")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "setup file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate cap (0 keeps the setup value)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance the simulation headless and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().IntVar(&track, "track", 0, "particle index plotted and traced")
	runCmd.Flags().BoolVar(&traceOut, "trace", false, "save a trajectory trace under --data")
	runCmd.Flags().IntVar(&traceEvery, "trace-every", 1, "trace every n-th frame")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final scene to an svg file")
	runCmd.Flags().StringVar(&integrator, "integrator", "", "override integrator (euler, verlet)")
	runCmd.Flags().BoolVar(&capture, "capture", false, "override capture mode")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCES\tPARTICLES\tCAPTURE\tTRAIL")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%t\t%d\n", name, len(cfg.Sources), cfg.Particles.Count, cfg.Capture, cfg.TrailCapacity)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective setup as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	tracesCmd := &cobra.Command{
		Use:   "traces",
		Short: "list saved traces",
		Args:  cobra.NoArgs,
		RunE:  listTraces,
	}

	rootCmd.AddCommand(runCmd, tuiCmd, presetsCmd, configCmd, tracesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the setup: preset (default "original"), then the
// setup file, then flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	name := preset
	if name == "" {
		name = "original"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q (available: %s): %w", name, strings.Join(config.ListPresets(), ", "), dynamo.ErrUnknownName)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Window.FPS = frameRate
	}
	if flags.Lookup("integrator") != nil && flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Lookup("capture") != nil && flags.Changed("capture") {
		cfg.Capture = capture
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	log := logging.New(logLevel)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}
	gui.Run(s, cfg.Window, log)
	return nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The terminal view owns stdout and stderr while it runs.
	log := logging.Discard()
	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(s, cfg.Name, cfg.Window, frameRate, log)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	log := logging.New(logLevel)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if track < 0 || track >= cfg.Particles.Count {
		return fmt.Errorf("track index %d outside [0, %d): %w", track, cfg.Particles.Count, dynamo.ErrParameterBounds)
	}

	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}
	for _, m := range metrics.Defaults(cfg.Window.Width, cfg.Window.Height) {
		s.AddMetric(m)
	}
	dist := metrics.NewDistance(track)
	s.AddMetric(dist)

	var rec *storage.Recorder
	if traceOut {
		rec = storage.NewRecorder([]int{track}, traceEvery)
		s.AddObserver(rec)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s for %d frames...\n", cfg.Name, frames)
	start := time.Now()
	result, err := s.Run(ctx, frames)
	if err != nil && !errors.Is(err, dynamo.ErrContextCanceled) {
		return err
	}
	if err != nil {
		log.Warn("run interrupted", "frames", result.Frames)
	}
	elapsed := time.Since(start)

	printSummary(cfg, result, elapsed)

	if series := dist.Series(); len(series) > 1 {
		graph := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("particle %d distance to nearest source", track)),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	if rec != nil {
		if err := saveTrace(cfg, s, result, rec, log); err != nil {
			return err
		}
	}

	if svgOut != "" {
		svg := export.SceneToSVG(s.Sources(), s.Particles(), cfg.Window.Width, cfg.Window.Height, cfg.Capture)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("svg: %s\n", svgOut)
	}
	return nil
}

func printSummary(cfg *config.Config, res *sim.Result, elapsed time.Duration) {
	fmt.Printf("completed %d frames in %v\n\n", res.Frames, elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SETUP\tINTEG\tSOURCES\tFREE\tCIRCLING\tDEAD\tERRORS")
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
		cfg.Name,
		cfg.Integrator,
		len(cfg.Sources),
		res.Stats.Free,
		res.Stats.Circling,
		res.Stats.Dead,
		len(res.Errors),
	)
	w.Flush()

	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(res.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, res.Metrics[name])
	}
	for _, e := range res.Errors {
		fmt.Printf("  error: %v\n", e)
	}
}

func saveTrace(cfg *config.Config, s *sim.Simulation, res *sim.Result, rec *storage.Recorder, log hclog.Logger) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.TraceMetadata{
		Setup:      cfg.Name,
		Frames:     res.Frames,
		Integrator: cfg.Integrator,
		Capture:    cfg.Capture,
		Sources:    len(s.Sources()),
		Particles:  len(s.Particles()),
		Tracked:    rec.Tracked(),
		Metrics:    res.Metrics,
	}
	runID, err := st.Save(meta, rec.Rows())
	if err != nil {
		return fmt.Errorf("save trace: %w", err)
	}
	log.Info("trace saved", "id", runID, "rows", len(rec.Rows()))
	fmt.Printf("trace id: %s\n", runID)
	return nil
}

func listTraces(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSETUP\tTIME\tFRAMES\tINTEG\tCAPTURE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%t\n",
			run.ID,
			run.Setup,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Integrator,
			run.Capture,
		)
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
