package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rotorlab/internal/aero"
	"github.com/san-kum/rotorlab/internal/analysis"
	"github.com/san-kum/rotorlab/internal/config"
	"github.com/san-kum/rotorlab/internal/export"
	"github.com/san-kum/rotorlab/internal/metrics"
	"github.com/san-kum/rotorlab/internal/rotor"
	"github.com/san-kum/rotorlab/internal/storage"
	"github.com/san-kum/rotorlab/internal/tui"
	"github.com/san-kum/rotorlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	runName    string

	// rotor flags
	tsr           float64
	blades        int
	rootPitch     float64
	bladeRadius   float64
	hubRadius     float64
	liftSlope     float64
	liftIntercept float64
	dragSlope     float64
	dragIntercept float64

	// solver flags
	tolerance float64
	maxIter   int
	parallel  bool
	save      bool
	variant   string

	// sweep flags
	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	// design flags
	designCl       float64
	designAlpha    float64
	designSections int
	designOut      string

	// plot flags
	plotField  string
	plotHeight int
	plotSVG    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rotorlab",
		Short: "blade element momentum analysis for wind turbine rotors",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rotorlab", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "run the linear BEM analysis over a blade geometry table",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	analyzeCmd.Flags().StringVar(&runName, "name", "rotor", "run name for storage")
	analyzeCmd.Flags().Float64Var(&tsr, "tsr", config.DefaultTipSpeedRatio, "tip-speed ratio")
	analyzeCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "number of blades")
	analyzeCmd.Flags().Float64Var(&rootPitch, "pitch", 0, "root pitch (rad)")
	analyzeCmd.Flags().Float64Var(&bladeRadius, "radius", config.DefaultBladeRadius, "blade radius (m)")
	analyzeCmd.Flags().Float64Var(&hubRadius, "hub", 0, "hub radius (m)")
	analyzeCmd.Flags().Float64Var(&liftSlope, "lift-slope", config.DefaultLiftSlope, "lift curve slope (1/rad)")
	analyzeCmd.Flags().Float64Var(&liftIntercept, "lift-intercept", config.DefaultLiftIntercept, "lift curve intercept")
	analyzeCmd.Flags().Float64Var(&dragSlope, "drag-slope", config.DefaultDragSlope, "drag curve slope (1/rad)")
	analyzeCmd.Flags().Float64Var(&dragIntercept, "drag-intercept", config.DefaultDragIntercept, "drag curve intercept")
	analyzeCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "tip-loss convergence tolerance")
	analyzeCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap per station")
	analyzeCmd.Flags().BoolVar(&parallel, "parallel", false, "solve stations concurrently")
	analyzeCmd.Flags().BoolVar(&save, "save", false, "persist the run to the data directory")
	analyzeCmd.Flags().StringVar(&variant, "variant", "linear", "analysis variant (linear, nonlinear)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the tip-speed ratio and plot the Cp-lambda curve",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().Float64Var(&sweepMin, "min-tsr", 2, "sweep start tip-speed ratio")
	sweepCmd.Flags().Float64Var(&sweepMax, "max-tsr", 12, "sweep end tip-speed ratio")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 21, "number of sweep points")
	sweepCmd.Flags().IntVar(&plotHeight, "height", 12, "graph height")
	sweepCmd.Flags().BoolVar(&parallel, "parallel", false, "solve stations concurrently")

	designCmd := &cobra.Command{
		Use:   "design",
		Short: "generate a Betz-optimum blade geometry table",
		RunE:  runDesign,
	}
	designCmd.Flags().Float64Var(&designCl, "cl", 1.0, "design lift coefficient")
	designCmd.Flags().Float64Var(&designAlpha, "alpha", 0.12, "design angle of attack (rad)")
	designCmd.Flags().Float64Var(&tsr, "tsr", config.DefaultTipSpeedRatio, "tip-speed ratio")
	designCmd.Flags().Float64Var(&bladeRadius, "radius", config.DefaultBladeRadius, "blade radius (m)")
	designCmd.Flags().Float64Var(&hubRadius, "hub", 0, "hub radius (m)")
	designCmd.Flags().IntVar(&blades, "blades", config.DefaultBlades, "number of blades")
	designCmd.Flags().IntVar(&designSections, "sections", 10, "number of blade sections")
	designCmd.Flags().StringVar(&designOut, "out", "", "write geometry to a yaml config file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a spanwise distribution from a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&plotField, "field", viz.FieldPowerCoef, "field to plot")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "graph height")
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write the plot to an svg file")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse a stored run interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(analyzeCmd, sweepCmd, designCmd, listCmd, plotCmd, exportCmd, viewCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, and flag overrides, in that
// order of increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("tsr") {
		cfg.Rotor.TipSpeedRatio = tsr
	}
	if flags.Changed("blades") {
		cfg.Rotor.Blades = blades
	}
	if flags.Changed("pitch") {
		cfg.Rotor.RootPitch = rootPitch
	}
	if flags.Changed("radius") {
		cfg.Rotor.BladeRadius = bladeRadius
	}
	if flags.Changed("hub") {
		cfg.Rotor.HubRadius = hubRadius
	}
	if flags.Changed("lift-slope") {
		cfg.Rotor.LiftSlope = liftSlope
	}
	if flags.Changed("lift-intercept") {
		cfg.Rotor.LiftIntercept = liftIntercept
	}
	if flags.Changed("drag-slope") {
		cfg.Rotor.DragSlope = dragSlope
	}
	if flags.Changed("drag-intercept") {
		cfg.Rotor.DragIntercept = dragIntercept
	}
	if flags.Changed("tol") {
		cfg.Solver.Tolerance = tolerance
	}
	if flags.Changed("max-iter") {
		cfg.Solver.MaxIterations = maxIter
	}
	if flags.Changed("parallel") {
		cfg.Solver.Parallel = parallel
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	rcfg := cfg.RotorConfig()

	geom, err := resolveGeometry(cfg, rcfg)
	if err != nil {
		return err
	}

	a, err := rotor.ByName(variant)
	if err != nil {
		return err
	}
	if la, ok := a.(*rotor.LinearAnalyzer); ok {
		la.Settings = cfg.SolverSettings()
		la.Parallel = cfg.Solver.Parallel
	}

	res, err := a.Analyze(context.Background(), geom, rcfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "station\tradius\ttiploss\talpha\tphi\tCl\tCd\ta\ta'\tCt\tCq\tCp\titer")
	for j, sr := range res.Stations {
		if sr.Err != nil {
			fmt.Fprintf(w, "%d\t%.3f\tFAULT: %v\n", j, sr.LocalRadius, sr.Err)
			continue
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
			j, sr.LocalRadius, sr.TipLoss, sr.AttackAngle, sr.RelWindAngle,
			sr.LiftCoef, sr.DragCoef, sr.AxialInduction, sr.AngularInduction,
			sr.ThrustCoef, sr.TorqueCoef, sr.PowerCoef, sr.Iterations)
	}
	w.Flush()

	sum := metrics.Summarize(res)
	fmt.Printf("\ntotal power coefficient: %.4f\n", sum.TotalPower)
	if sum.Solved > 0 {
		fmt.Printf("peak station %d (local Cp %.4f), mean tip loss %.4f, mean axial induction %.4f\n",
			sum.PeakStation, sum.PeakPower, sum.MeanTipLoss, sum.MeanAxial)
	}
	if res.Degraded {
		fmt.Printf("degraded: stations %v faulted\n", res.Faults())
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(runName, rcfg, res)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s\n", runID)
	}
	return nil
}

// resolveGeometry returns the configured blade table, designing an
// optimum one at the configured operating point when none is given.
func resolveGeometry(cfg *config.Config, rcfg aero.RotorConfig) ([]aero.Station, error) {
	if len(cfg.Geometry) > 0 {
		return cfg.Geometry, nil
	}
	geom, err := rotor.OptimumRotor(cfg.Design.LiftCoef, cfg.Design.AttackAngle,
		rcfg.TipSpeedRatio, rcfg.BladeRadius, rcfg.HubRadius,
		rcfg.Blades, cfg.Design.Sections)
	if err != nil {
		return nil, err
	}
	fmt.Printf("no geometry table given, designed %d optimum sections\n\n", len(geom))
	return geom, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	rcfg := cfg.RotorConfig()

	geom, err := resolveGeometry(cfg, rcfg)
	if err != nil {
		return err
	}

	a := rotor.NewLinearAnalyzer()
	a.Settings = cfg.SolverSettings()
	a.Parallel = cfg.Solver.Parallel

	points, err := analysis.TSRSweep(context.Background(), a, geom, rcfg, sweepMin, sweepMax, sweepSteps)
	if err != nil {
		return err
	}

	graph, err := viz.PowerCurve(points, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(graph)

	if peak, ok := analysis.PeakPower(points); ok {
		fmt.Printf("\npeak total Cp %.4f at tip-speed ratio %.2f\n", peak.PowerCoef, peak.TSR)
	}
	for _, p := range points {
		if p.Degraded {
			fmt.Printf("warning: degraded analysis at tsr %.2f\n", p.TSR)
		}
	}
	return nil
}

func runDesign(cmd *cobra.Command, args []string) error {
	geom, err := rotor.OptimumRotor(designCl, designAlpha, tsr, bladeRadius, hubRadius, blades, designSections)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "section\tfrac radius\tchord (m)\ttwist (rad)")
	for i, st := range geom {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\n", i, st.FracRadius, st.Chord, st.Twist)
	}
	w.Flush()

	if designOut != "" {
		cfg := config.DefaultConfig()
		cfg.Rotor.TipSpeedRatio = tsr
		cfg.Rotor.Blades = blades
		cfg.Rotor.BladeRadius = bladeRadius
		cfg.Rotor.HubRadius = hubRadius
		cfg.Design = config.DesignConfig{LiftCoef: designCl, AttackAngle: designAlpha, Sections: designSections}
		cfg.Geometry = geom
		if err := config.Save(designOut, cfg); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", designOut)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttimestamp\tstations\ttsr\tblades\ttotal Cp\tdegraded")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%d\t%.4f\t%v\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Stations, r.Rotor.TipSpeedRatio, r.Rotor.Blades, r.PowerCoef, r.Degraded)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, res, err := st.Load(args[0])
	if err != nil {
		return err
	}
	graph, err := viz.Spanwise(res, plotField, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(graph)

	if plotSVG != "" {
		if err := export.WriteSpanwiseSVG(plotSVG, res, plotField, 800, 400); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", plotSVG)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, res, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta.Name, meta.Rotor, res)
}

func runView(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, res, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return tui.Run(meta.ID, res)
}
