package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ironsheep/led-locator/internal/config"
	"github.com/ironsheep/led-locator/internal/session"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("led-map %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("led-map - locate the lit LED in each capture of a mapping session")
			fmt.Println()
			fmt.Println("Usage: led-map [frames-dir]")
			fmt.Println()
			fmt.Println("The baseline capture (all LEDs off) is read from <frames-dir>/base.png.")
			fmt.Println("Every other file in the directory is processed in name order and one")
			fmt.Println("line is printed per file: \"x, y, intensity\", or an empty line when no")
			fmt.Println("light was found.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LED_MAP_FRAMES_DIR=frames      Frames directory (overridden by argument)")
			fmt.Println("  LED_MAP_BASE_FRAME=base.png    Baseline file name")
			fmt.Println("  LED_MAP_WORKERS=0              Concurrent frames (0 = CPU count)")
			fmt.Println("  LED_MAP_MIN_INTENSITY=0        Reject dimmer detections")
			fmt.Println("  LED_MAP_DEBUG_DIR=             Write heat-map PNGs here")
			fmt.Println("  LED_MAP_MARKER_COLOR=#00FF00   Heat-map crosshair colour")
			fmt.Println("  LED_MAP_LOG_LEVEL=debug        Enable debug logging")
			return
		}
	}

	// stdout carries results only
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.FramesDir = os.Args[1]
	}

	driver := &session.Driver{
		Workers:      cfg.Workers,
		MinIntensity: cfg.MinIntensity,
		DebugDir:     cfg.DebugDir,
		MarkerColor:  cfg.MarkerColor,
	}
	if cfg.Debug() {
		log.Printf("led-map v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		driver.Logger = log.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := driver.Run(ctx, cfg.FramesDir, cfg.BaseFrame)
	if err != nil {
		log.Fatalf("Mapping failed: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := session.WriteResults(out, results); err != nil {
		log.Fatalf("Output error: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Output error: %v", err)
	}
}
