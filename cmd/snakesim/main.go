package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/junyaoshi/snakesim/internal/config"
	"github.com/junyaoshi/snakesim/internal/experiment"
	"github.com/junyaoshi/snakesim/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	gaitName   string
	integrator string
	steps      int
	timestep   int
	tInterval  float64
	linkLength float64
	viscosity  float64
	amplitude  float64
	frequency  float64
	offset     float64
	seed       int64
	noLimits   bool
	randomize  bool
	opposite   bool
	numRuns    int
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "snakesim",
		Short: "reduced-order kinematic simulation of a three-link articulated robot",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".snakesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a simulation session",
		Args:  cobra.ExactArgs(1),
		RunE:  runSession,
	}
	addSessionFlags(runCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run an ensemble of sessions with randomized initial joint states",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addSessionFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&numRuns, "runs", 8, "number of ensemble runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata or trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "export format (json|csv)")

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&gaitName, "gait", "square", "gait (none|square|phase)")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler|rk4|rk45)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of control steps")
	cmd.Flags().IntVar(&timestep, "timestep", config.DefaultTimestep, "timestep count per control step")
	cmd.Flags().Float64Var(&tInterval, "t-interval", config.DefaultTInterval, "duration of one timestep")
	cmd.Flags().Float64Var(&linkLength, "link-length", config.DefaultLinkLength, "link length")
	cmd.Flags().Float64Var(&viscosity, "viscosity", config.DefaultViscosity, "viscosity constant")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "gait amplitude")
	cmd.Flags().Float64Var(&frequency, "frequency", 0.5, "gait phase advance per step")
	cmd.Flags().Float64Var(&offset, "offset", 0, "gait phase offset")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().BoolVar(&noLimits, "no-limits", false, "disable joint limit enforcement")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "randomize initial joint state")
	cmd.Flags().BoolVar(&opposite, "opposite-signs", false, "constrain randomized joints to opposite signs")
}

func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for model %q (have: %s)",
				preset, model, strings.Join(config.ListPresets(model), ", "))
		}
		cfg = p
	}

	cfg.Model = model
	cfg.Seed = seed

	override := map[string]func(){
		"gait":           func() { cfg.Gait = gaitName },
		"integrator":     func() { cfg.Integrator = integrator },
		"steps":          func() { cfg.Steps = steps },
		"timestep":       func() { cfg.Timestep = timestep },
		"t-interval":     func() { cfg.TInterval = tInterval },
		"link-length":    func() { cfg.LinkLength = linkLength },
		"viscosity":      func() { cfg.Viscosity = viscosity },
		"amplitude":      func() { cfg.GaitParams.Amplitude = amplitude },
		"frequency":      func() { cfg.GaitParams.Frequency = frequency },
		"offset":         func() { cfg.GaitParams.Offset = offset },
		"no-limits":      func() { cfg.Limits = !noLimits },
		"randomize":      func() { cfg.Randomize = randomize },
		"opposite-signs": func() { cfg.Opposite = opposite },
	}
	for name, apply := range override {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	mover, gen, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	if cfg.Randomize {
		a1, a2 := mover.RandomizeJointState(cfg.Opposite)
		fmt.Printf("randomized joints: a1=%.4f a2=%.4f\n", a1, a2)
	}

	sess := experiment.NewSession(mover, gen, cfg.Timestep, cfg.Limits)
	for _, m := range experiment.DefaultMetrics(mover.Labels()) {
		sess.AddMetric(m)
	}

	result, err := sess.Run(context.Background(), cfg.Steps)
	if err != nil {
		return err
	}
	for _, stepErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "episode ended early: %v\n", stepErr)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	final := result.States[len(result.States)-1]
	labels := mover.Labels()
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "elapsed\t%.4f\n", mover.Elapsed())
	for i, label := range labels {
		fmt.Fprintf(w, "%s\t%.6f\n", label, final[i])
	}
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, val)
	}
	w.Flush()

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Model:      cfg.Model,
		Gait:       cfg.Gait,
		Integrator: cfg.Integrator,
		Seed:       cfg.Seed,
		TInterval:  cfg.TInterval,
		Timestep:   cfg.Timestep,
		Steps:      result.StepsTaken,
	}, labels, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	ens := experiment.NewEnsemble(cfg, numRuns, cfg.Seed)
	results, err := ens.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "run\tsteps\tdisplacement\tcontrol_effort")
	total := 0.0
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.6f\t%.6f\n",
			i, r.StepsTaken, r.Metrics["displacement"], r.Metrics["control_effort"])
		total += r.Metrics["displacement"]
	}
	fmt.Fprintf(w, "mean\t\t%.6f\t\n", total/float64(len(results)))
	w.Flush()
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tmodel\tgait\tsteps\ttimestamp")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID, run.Model, run.Gait, run.Steps, run.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runID := args[0]

	switch format {
	case "json":
		meta, err := store.Load(runID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case "csv":
		header, rows, err := store.LoadTrajectory(runID)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(header, ","))
		for _, row := range rows {
			fields := make([]string, len(row))
			for i, v := range row {
				fields[i] = strconv.FormatFloat(v, 'f', 6, 64)
			}
			fmt.Println(strings.Join(fields, ","))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
