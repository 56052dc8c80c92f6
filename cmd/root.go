package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/HiDomesticCat/sushi-sync/sim"
)

var (
	// CLI flags for the run command
	partiesPath     string        // Party records CSV path
	layoutPath      string        // Seat layout document path (YAML or JSON)
	babyChairs      int           // Baby-chair pool total
	wheelchairSpots int           // Wheelchair-spot pool total
	waitTimeout     time.Duration // Bounded wait before a party gives up
	gracePeriod     int64         // Trailing frame ticks past the last event
	tickDuration    time.Duration // Real time per logical tick (0 = no sleeping)
	logLevel        string        // Log verbosity level
	outputPath      string        // Frames output path ("" = stdout)
	logOnly         bool          // Emit the raw sorted event log instead of frames
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sushi-sync",
	Short: "Concurrent seating-contention simulator with deterministic replay",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the seating simulation",
	PreRun: func(cmd *cobra.Command, args []string) {
		loadEnvDefaults(cmd.Flags())
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if partiesPath == "" {
			logrus.Fatalf("Party records file not provided. Exiting simulation.")
		}
		if layoutPath == "" {
			logrus.Fatalf("Seat layout file not provided. Exiting simulation.")
		}

		parties, err := LoadParties(partiesPath)
		if err != nil {
			logrus.Fatalf("unable to read party records: %v", err)
		}
		layout, err := LoadLayout(layoutPath)
		if err != nil {
			logrus.Fatalf("unable to read seat layout: %v", err)
		}

		cfg := sim.NewConfig()
		cfg.BabyChairs = babyChairs
		cfg.WheelchairSpots = wheelchairSpots
		cfg.WaitTimeout = waitTimeout
		cfg.GracePeriod = gracePeriod
		cfg.TickDuration = tickDuration

		s, err := sim.NewSimulator(cfg, layout, parties)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		startTime := time.Now()
		result := s.Run()
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))

		if err := writeResult(result, outputPath, logOnly); err != nil {
			logrus.Fatalf("unable to write output: %v", err)
		}
		result.Metrics.Print()
	},
}

// writeResult emits the frame replay (or, with logOnly, the raw sorted event
// log) as JSON to path, or to stdout when path is empty.
func writeResult(result *sim.RunResult, path string, logOnly bool) error {
	var payload any = result.Frames
	if logOnly {
		payload = result.Events
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// envFlags maps SUSHISYNC_* environment keys to run-command flag names,
// letting a .env file carry per-checkout defaults.
var envFlags = map[string]string{
	"SUSHISYNC_PARTIES": "parties",
	"SUSHISYNC_LAYOUT":  "layout",
}

// loadEnvDefaults loads a .env file when present and fills flags from the
// environment. Runs from the command's PreRun, after flag parsing, so the
// values are applied only where the user passed no explicit flag.
func loadEnvDefaults(flags *pflag.FlagSet) {
	_ = godotenv.Load()
	applyEnvDefaults(flags)
}

// applyEnvDefaults copies SUSHISYNC_* environment values onto the flags the
// user did not set explicitly.
func applyEnvDefaults(flags *pflag.FlagSet) {
	for key, name := range envFlags {
		if v := os.Getenv(key); v != "" && !flags.Changed(name) {
			_ = flags.Set(name, v)
		}
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&partiesPath, "parties", "", "Path to the party records CSV")
	runCmd.Flags().StringVar(&layoutPath, "layout", "", "Path to the seat layout document (YAML or JSON)")
	runCmd.Flags().IntVar(&babyChairs, "baby-chairs", sim.DefaultBabyChairs, "Baby-chair pool total")
	runCmd.Flags().IntVar(&wheelchairSpots, "wheelchair-spots", sim.DefaultWheelchairSpots, "Wheelchair-spot pool total")
	runCmd.Flags().DurationVar(&waitTimeout, "wait-timeout", sim.DefaultWaitTimeout, "How long a party waits for seats before giving up (0 = forever)")
	runCmd.Flags().Int64Var(&gracePeriod, "grace", sim.DefaultGracePeriod, "Trailing frame ticks past the last event")
	runCmd.Flags().DurationVar(&tickDuration, "tick", 0, "Real time per logical tick (0 = run without sleeping)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Output file for the frame replay JSON (default stdout)")
	runCmd.Flags().BoolVar(&logOnly, "log-only", false, "Emit the raw sorted event log instead of frames")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
