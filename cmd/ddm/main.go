package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/MaxUCSD/ddm-simulator/internal/config"
	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
	"github.com/MaxUCSD/ddm-simulator/internal/ensemble"
	"github.com/MaxUCSD/ddm-simulator/internal/storage"
	"github.com/MaxUCSD/ddm-simulator/internal/viz"
)

var (
	dataDir    string
	driftRate  float64
	threshold  float64
	bias       float64
	noiseScale float64
	dt         float64
	maxTime    float64
	seed       int64
	configFile string
	preset     string
	trials     int
	batch      int
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddm",
		Short: "drift diffusion model simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ddm", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one trial to completion",
		RunE:  runTrial,
	}
	addParamFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a trial with live visualization",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().IntVar(&batch, "batch", ddm.DefaultBatch, "steps per frame")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run many independent trials",
		RunE:  runEnsemble,
	}
	addParamFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&trials, "trials", config.DefaultTrials, "number of trials")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved trials",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trial",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export trial data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export trial data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, ensembleCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&driftRate, "drift", config.DefaultDriftRate, "drift rate")
	cmd.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "decision threshold")
	cmd.Flags().Float64Var(&bias, "bias", config.DefaultBias, "starting bias")
	cmd.Flags().Float64Var(&noiseScale, "noise", config.DefaultNoiseScale, "noise scale")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&maxTime, "max-time", config.DefaultMaxTime, "time limit")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveParams layers preset, config file, and flags: flags win when
// set explicitly, the config file beats the preset.
func resolveParams(cmd *cobra.Command) (ddm.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return ddm.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return ddm.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("drift") {
		driftRate = cfg.DriftRate
	}
	if !cmd.Flags().Changed("threshold") {
		threshold = cfg.Threshold
	}
	if !cmd.Flags().Changed("bias") {
		bias = cfg.StartingBias
	}
	if !cmd.Flags().Changed("noise") {
		noiseScale = cfg.NoiseScale
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("max-time") {
		maxTime = cfg.MaxTime
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if f := cmd.Flags().Lookup("trials"); f != nil && !f.Changed && cfg.Trials > 0 {
		trials = cfg.Trials
	}

	p := ddm.Params{
		DriftRate:    driftRate,
		Threshold:    threshold,
		StartingBias: bias,
		NoiseScale:   noiseScale,
		Dt:           dt,
		MaxTime:      maxTime,
	}
	return p, p.Validate()
}

func runTrial(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, err := ddm.New(p, ddm.NewGaussianNoise(seed))
	if err != nil {
		return err
	}

	fmt.Println("running trial...")
	start := time.Now()

	trial, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(p, seed, trial)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", trial.Steps())
	if trial.Decided {
		fmt.Printf("decision: %s boundary at %.2fs\n", trial.Boundary, trial.DecisionTime)
	} else {
		fmt.Printf("no decision within %.2fs\n", p.MaxTime)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	sim, err := ddm.New(p, ddm.NewGaussianNoise(seed))
	if err != nil {
		return err
	}

	m := viz.NewModel(sim, batch, frameRate)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("running %d trials...\n", trials)
	start := time.Now()

	outcomes, err := ensemble.New(p, trials, seed).Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	summary := ensemble.Summarize(outcomes)

	fmt.Printf("completed in %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIALS\tUPPER\tLOWER\tTIMEOUT\tMEAN RT\tMIN RT\tMAX RT")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.3fs\t%.3fs\t%.3fs\n",
		summary.Trials,
		summary.Upper,
		summary.Lower,
		summary.Timeout,
		summary.MeanDecisionTime,
		summary.MinDecisionTime,
		summary.MaxDecisionTime,
	)
	if err := w.Flush(); err != nil {
		return err
	}

	if summary.Upper+summary.Lower > 0 {
		fmt.Printf("\nupper rate: %.1f%%\n", summary.UpperRate()*100)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no trials found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDRIFT\tTHRESHOLD\tBIAS\tNOISE\tOUTCOME")

	for _, run := range runs {
		outcome := "timeout"
		if run.Decided {
			outcome = fmt.Sprintf("%s @ %.2fs", run.Boundary, run.DecisionTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.DriftRate,
			run.Threshold,
			run.StartingBias,
			run.NoiseScale,
			outcome,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, evidences, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(evidences) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("boundaries: ±%.2f\n", meta.Threshold)
	fmt.Printf("samples: %d\n\n", len(evidences))

	graph := asciigraph.Plot(evidences,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("evidence vs time"),
	)
	fmt.Println(graph)
	fmt.Println()

	if meta.Decided {
		fmt.Printf("decision: %s boundary at %.2fs\n", meta.Boundary, meta.DecisionTime)
	} else {
		fmt.Printf("no decision within %.2fs\n", meta.MaxTime)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, evidences, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "evidence"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(evidences[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, evidences, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, times, evidences)
}
