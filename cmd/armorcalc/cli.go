package main

import (
	"flag"
	"fmt"
)

// Options are the parsed command line arguments. Zero values mean "not
// provided"; config defaults fill the gaps later.
type Options struct {
	ConfigDir string

	VehicleID string
	Ammo      string

	Material    string
	Mode        string
	Obliquity   float64
	MaxDistance float64
	Steps       int

	All    bool
	List   bool
	Output string
}

func parseArgs(args []string) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("armorcalc", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigDir, "config", ".", "directory containing armorcalc.cfg.json")
	fs.StringVar(&opts.VehicleID, "vehicle", "", "vehicle id from the dataset, e.g. germ_leopard_2a4")
	fs.StringVar(&opts.Ammo, "ammo", "", "ammunition name; empty lists the vehicle's rounds")
	fs.StringVar(&opts.Material, "material", "", "penetrator material override (tungsten, du, steel)")
	fs.StringVar(&opts.Mode, "mode", "", "calculation mode override (perforation, penetration)")
	fs.Float64Var(&opts.Obliquity, "obliquity", -1, "target obliquity override in NATO degrees")
	fs.Float64Var(&opts.MaxDistance, "distance", 0, "maximum curve distance in meters")
	fs.IntVar(&opts.Steps, "steps", 0, "number of curve steps")
	fs.BoolVar(&opts.All, "all", false, "compute curves for every round of every vehicle")
	fs.BoolVar(&opts.List, "list", false, "list vehicles in the dataset and exit")
	fs.StringVar(&opts.Output, "output", "text", "output format: text or json")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.Output != "text" && opts.Output != "json" {
		return opts, fmt.Errorf("invalid output format %q", opts.Output)
	}
	if !opts.All && !opts.List && opts.VehicleID == "" {
		return opts, fmt.Errorf("one of -vehicle, -all or -list is required")
	}

	return opts, nil
}
