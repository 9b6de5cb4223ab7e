//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"huebar/app"
	"huebar/hal"
	"huebar/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var hold string
	var version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Refresh rate in headless mode.")
	flag.StringVar(&hold, "hold", "", "Buttons held for the whole headless run, e.g. up,right.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last headless frame to this .png or .bmp file.")
	flag.Uint64Var(&appCfg.Frames, "frames", 0, "Stop after N frames (0 = run forever).")
	flag.BoolVar(&appCfg.Verbose, "verbose", false, "Log every saturation/value change.")
	flag.BoolVar(&version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	newApp := func(h hal.HAL) hal.Runner { return app.New(h, appCfg) }

	if cfg.Enabled {
		mask, err := hal.ParseButtons(hold)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Hold = mask

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
