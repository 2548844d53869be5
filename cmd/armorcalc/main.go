package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/wtsight/armorcalc/internal/cache"
	"github.com/wtsight/armorcalc/internal/config"
	"github.com/wtsight/armorcalc/internal/curve"
	"github.com/wtsight/armorcalc/internal/influx"
	"github.com/wtsight/armorcalc/internal/logging"
	"github.com/wtsight/armorcalc/internal/params"
	"github.com/wtsight/armorcalc/internal/queue"
	"github.com/wtsight/armorcalc/internal/storage"
	"github.com/wtsight/armorcalc/internal/worker"
	"github.com/wtsight/armorcalc/pkg/core"
)

// version info, overridable at build time via ldflags
var (
	CurrentVersion string = "0.5.0"
	BuildDate      string = "unknown"
)

type app struct {
	logger    *slog.Logger
	backend   storage.Backend
	metrics   *influx.Manager
	cache     *cache.VehicleCache
	source    *params.Source
	generator *curve.Generator
	calc      config.CalculatorConfig
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sessionStart := time.Now()

	logManager := logging.NewManager()
	if err := config.Load(opts.ConfigDir); err != nil {
		// config file is optional, defaults cover everything
		logManager.Logger().Warn("Failed to load config, using defaults", "error", err)
	}

	logsDir := viper.GetString("logsDir")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		_ = os.MkdirAll(logsDir, 0755)
	}
	logFile, err := os.OpenFile(
		logging.SessionLogPath(logsDir, sessionStart),
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session log file: %v\n", err)
	}

	gelfAddr := ""
	if viper.GetBool("graylog.enabled") {
		gelfAddr = viper.GetString("graylog.address")
	}
	if err := logManager.Setup(logFile, viper.GetString("logLevel"), gelfAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	logger := logManager.Logger()
	logger.Info("Starting up", "version", CurrentVersion, "buildDate", BuildDate)

	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	backend, err := storage.NewBackend(viper.GetString("storage.type"), zl)
	if err != nil {
		logger.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		logger.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer func() { _ = backend.Close() }()

	metrics := influx.NewManager(zl)
	if viper.GetBool("influx.enabled") {
		if err := metrics.Connect(); err != nil {
			logger.Warn("InfluxDB connection failed", "error", err)
		}
	}
	defer metrics.Close()

	generator, err := curve.New(logger)
	if err != nil {
		logger.Error("Failed to create curve generator", "error", err)
		os.Exit(1)
	}

	a := &app{
		logger:    logger,
		backend:   backend,
		metrics:   metrics,
		cache:     cache.NewVehicleCache(),
		source:    params.NewSource(logger),
		generator: generator,
		calc:      config.GetCalculator(),
	}

	if err := a.loadDataset(viper.GetString("dataset.vehiclesFile")); err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	switch {
	case opts.List:
		err = a.listVehicles()
	case opts.All:
		err = a.computeAll(opts)
	default:
		err = a.computeSingle(opts)
	}
	if err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// loadDataset reads the merged vehicle dataset into the cache and the
// storage backend.
func (a *app) loadDataset(path string) error {
	start := time.Now()
	vehicles, err := LoadVehicles(path)
	if err != nil {
		return err
	}

	for i := range vehicles {
		a.cache.Set(vehicles[i])
		if err := a.backend.UpsertVehicle(&vehicles[i]); err != nil {
			return fmt.Errorf("storing vehicle %s: %w", vehicles[i].VehicleID, err)
		}
	}

	a.logger.Info("Dataset loaded",
		"vehicles", len(vehicles), "elapsed", time.Since(start))
	return nil
}

func (a *app) listVehicles() error {
	vehicles, err := a.backend.ListVehicles()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNATION\tRANK\tBR\tROUNDS")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%d\n",
			v.VehicleID, v.LocalizedName, v.Nation, v.Rank, v.BattleRating, len(v.Ammunition))
	}
	return w.Flush()
}

// resolveRequest builds the calculation request for one round, applying
// config defaults and command line overrides.
func (a *app) resolveRequest(ammo core.Ammunition, opts Options) (curve.Request, error) {
	req := a.source.FromAmmunition(ammo)

	req.Target.Density = a.calc.TargetDensity
	req.Target.Hardness = a.calc.TargetHardness
	req.Target.Obliquity = a.calc.TargetObliquity
	req.MaxDistance = a.calc.MaxDistance
	req.Steps = a.calc.Steps

	if opts.Obliquity >= 0 {
		req.Target.Obliquity = opts.Obliquity
	}
	if opts.MaxDistance > 0 {
		req.MaxDistance = opts.MaxDistance
	}
	if opts.Steps > 0 {
		req.Steps = opts.Steps
	}
	if opts.Material != "" {
		m, err := core.ParseMaterial(opts.Material)
		if err != nil {
			return req, err
		}
		req.Material = m
	}
	if opts.Mode != "" {
		m, err := core.ParseMode(opts.Mode)
		if err != nil {
			return req, err
		}
		req.Mode = m
	}

	return req, nil
}

func (a *app) computeSingle(opts Options) error {
	vehicle, ok := a.cache.Get(opts.VehicleID)
	if !ok {
		return fmt.Errorf("vehicle %q not in dataset", opts.VehicleID)
	}

	if opts.Ammo == "" {
		fmt.Printf("Rounds for %s (%s):\n", vehicle.LocalizedName, vehicle.VehicleID)
		for _, ammo := range vehicle.Ammunition {
			fmt.Printf("  %s (%s, %.0f mm)\n", ammo.Name, ammo.Material, ammo.Caliber)
		}
		return nil
	}

	ammo, ok := a.cache.GetAmmunition(opts.VehicleID, opts.Ammo)
	if !ok {
		return fmt.Errorf("round %q not found on vehicle %q", opts.Ammo, opts.VehicleID)
	}

	req, err := a.resolveRequest(ammo, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	muzzle := a.generator.Evaluate(req, req.Ballistics.MuzzleVelocity)
	points := a.generator.DistanceCurve(req)
	table := a.generator.AngleTable(req)
	elapsed := time.Since(start)

	a.metrics.WriteCalcPerformance(vehicle.VehicleID, ammo.Name, len(points), elapsed)

	computed := &core.ComputedCurve{
		VehicleID:  vehicle.VehicleID,
		Ammunition: ammo.Name,
		Mode:       req.Mode,
		Material:   req.Material,
		Obliquity:  req.Target.Obliquity,
		Points:     points,
	}
	if len(points) > 0 {
		if err := a.backend.SaveCurve(computed); err != nil {
			a.logger.Error("Failed to save curve", "error", err)
		}
	}

	if opts.Output == "json" {
		return printJSON(vehicle, ammo, muzzle, computed, table)
	}
	printText(vehicle, ammo, muzzle, computed, table)
	return nil
}

func (a *app) computeAll(opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vehicles, err := a.backend.ListVehicles()
	if err != nil {
		return err
	}

	jobs := queue.New[worker.Job]()
	for _, v := range vehicles {
		for _, ammo := range v.Ammunition {
			jobs.Push(worker.Job{VehicleID: v.VehicleID, Ammo: ammo})
		}
	}
	total := jobs.Len()

	target := core.TargetProperties{
		Density:   a.calc.TargetDensity,
		Hardness:  a.calc.TargetHardness,
		Obliquity: a.calc.TargetObliquity,
	}
	if opts.Obliquity >= 0 {
		target.Obliquity = opts.Obliquity
	}

	pool := worker.NewPool(worker.Dependencies{
		Generator:   a.generator,
		Source:      a.source,
		Backend:     a.backend,
		Logger:      a.logger,
		Target:      target,
		MaxDistance: a.calc.MaxDistance,
		Steps:       a.calc.Steps,
	}, viper.GetInt("workers"))

	start := time.Now()
	computed, skipped := pool.Run(ctx, jobs)
	elapsed := time.Since(start)

	a.metrics.WriteCalcPerformance("_batch", "_all", computed, elapsed)
	a.logger.Info("Batch computation finished",
		"total", total, "computed", computed, "skipped", skipped, "elapsed", elapsed)

	if ctx.Err() != nil {
		return fmt.Errorf("interrupted after %d of %d jobs", computed+skipped, total)
	}
	return nil
}

// singleOutput is the JSON shape of a single-round computation.
type singleOutput struct {
	Vehicle            string            `json:"vehicle"`
	Ammunition         string            `json:"ammunition"`
	Mode               string            `json:"mode"`
	Material           string            `json:"material"`
	WorkingLength      float64           `json:"workingLength"`
	AspectRatio        float64           `json:"aspectRatio"`
	MinErosionVelocity float64           `json:"minErosionVelocity"`
	MuzzlePenetration  float64           `json:"muzzlePenetration"`
	ReferencePen       float64           `json:"referencePenetration,omitempty"`
	Errors             []string          `json:"errors,omitempty"`
	Curve              []core.CurvePoint `json:"curve"`
	AngleTable         []core.AngleRow   `json:"angleTable"`
}

func printJSON(v core.Vehicle, ammo core.Ammunition, muzzle core.Result, c *core.ComputedCurve, table core.AngleTable) error {
	out := singleOutput{
		Vehicle:            v.VehicleID,
		Ammunition:         ammo.Name,
		Mode:               muzzle.Mode.String(),
		Material:           muzzle.Material.String(),
		WorkingLength:      muzzle.WorkingLength,
		AspectRatio:        muzzle.AspectRatio,
		MinErosionVelocity: muzzle.MinErosionVelocity,
		MuzzlePenetration:  muzzle.Penetration,
		ReferencePen:       ammo.ReferencePenetration,
		Curve:              c.Points,
		AngleTable:         table.Rows,
	}
	for _, e := range muzzle.Errors {
		out.Errors = append(out.Errors, e.Error())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printText(v core.Vehicle, ammo core.Ammunition, muzzle core.Result, c *core.ComputedCurve, table core.AngleTable) {
	fmt.Printf("%s (%s) firing %s\n", v.LocalizedName, v.VehicleID, ammo.Name)
	fmt.Printf("  material: %s  mode: %s  obliquity: %.0f°\n",
		muzzle.Material, muzzle.Mode, c.Obliquity)
	fmt.Printf("  working length: %.1f mm  aspect ratio: %.2f\n",
		muzzle.WorkingLength, muzzle.AspectRatio)
	if muzzle.MinErosionVelocity > 0 {
		fmt.Printf("  min erosion velocity: %.0f m/s\n", muzzle.MinErosionVelocity*1000)
	}

	if !muzzle.Valid() {
		fmt.Println("  input problems:")
		for _, e := range muzzle.Errors {
			fmt.Printf("    - %s\n", e.Error())
		}
		return
	}

	fmt.Printf("  muzzle penetration: %.0f mm", muzzle.Penetration)
	if ammo.ReferencePenetration > 0 {
		delta := muzzle.Penetration - ammo.ReferencePenetration
		fmt.Printf("  (reference %.0f mm, %+.0f mm)", ammo.ReferencePenetration, delta)
	}
	fmt.Println()

	if len(c.Points) > 0 {
		fmt.Println("\nPenetration vs distance:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "DIST m\tVEL m/s\tPEN mm\tEQUIV mm\t")
		for _, p := range c.Points {
			fmt.Fprintf(w, "%.0f\t%.0f\t%.0f\t%.0f\t\n",
				p.Distance, p.ImpactVelocity, p.BasePenetration, p.EquivalentPenetration)
		}
		_ = w.Flush()
	}

	if len(table.Rows) > 0 {
		fmt.Println("\nAngle table:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "DIST m\t%.0f°\t%.0f°\t%.0f°\t\n",
			core.TableAngles[0], core.TableAngles[1], core.TableAngles[2])
		for _, row := range table.Rows {
			fmt.Fprintf(w, "%.0f\t%.0f\t%.0f\t%.0f\t\n",
				row.Distance, row.Penetration[0], row.Penetration[1], row.Penetration[2])
		}
		_ = w.Flush()
	}
}
