package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// options are read from the environment first; command line flags win.
type options struct {
	Level       string  `env:"JEWELRUN_LEVEL"`
	Debug       bool    `env:"JEWELRUN_DEBUG"`
	Watch       bool    `env:"JEWELRUN_WATCH"`
	Sensitivity float64 `env:"JEWELRUN_SENSITIVITY" envDefault:"1"`
	// InvertY is "", "true" or "false"; empty keeps camera.yaml.
	InvertY     string `env:"JEWELRUN_INVERT_Y"`
	BaseMonitor bool   `env:"JEWELRUN_BASE_MONITOR"`
}

func parseOptions(args []string) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return opts, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("jewelrun", flag.ContinueOnError)
	fs.StringVar(&opts.Level, "level", opts.Level, "level name in levels/ (basename, .json optional)")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "enable debug mode (K damages, H heals, events are logged)")
	fs.BoolVar(&opts.Watch, "watch", opts.Watch, "hot reload prefabs/ while running")
	fs.Float64Var(&opts.Sensitivity, "sensitivity", opts.Sensitivity, "mouse look sensitivity")
	fs.StringVar(&opts.InvertY, "invert-y", opts.InvertY, "override camera.yaml invert_y (true or false)")
	fs.BoolVar(&opts.BaseMonitor, "m", opts.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if _, err := opts.invertY(); err != nil {
		return opts, err
	}
	if opts.Sensitivity <= 0 {
		return opts, fmt.Errorf("sensitivity must be positive, got %v", opts.Sensitivity)
	}
	return opts, nil
}

// invertY returns nil when the prefab value should be kept.
func (o options) invertY() (*bool, error) {
	if o.InvertY == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(o.InvertY)
	if err != nil {
		return nil, fmt.Errorf("invert-y: %w", err)
	}
	return &v, nil
}
