package cmd

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags for the generate command
	generateCount  int    // Number of parties to generate
	generateSeed   int64  // Seed for the party generator
	generateOutput string // Destination CSV path ("" = stdout)
)

// generateCmd emits a synthetic party-records CSV for quick experiments.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic party records CSV",
	Run: func(cmd *cobra.Command, args []string) {
		rng := rand.New(rand.NewSource(generateSeed))

		out := os.Stdout
		if generateOutput != "" {
			f, err := os.Create(generateOutput)
			if err != nil {
				logrus.Fatalf("unable to create output file: %v", err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		_ = w.Write([]string{"id", "arrivalTime", "partySize", "babyChairs", "wheelchairSpots", "diningTime"})
		for i := 1; i <= generateCount; i++ {
			size := 1 + rng.Intn(6)
			baby := 0
			if size > 1 && rng.Intn(4) == 0 {
				baby = 1 + rng.Intn(2)
			}
			wheel := 0
			if rng.Intn(10) == 0 {
				wheel = 1
			}
			_ = w.Write([]string{
				fmt.Sprintf("P%03d", i),
				strconv.FormatInt(int64(i-1)*5+int64(rng.Intn(3)), 10),
				strconv.Itoa(size),
				strconv.Itoa(baby),
				strconv.Itoa(wheel),
				strconv.Itoa(20 + rng.Intn(21)),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			logrus.Fatalf("unable to write party records: %v", err)
		}
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 10, "Number of parties to generate")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for the party generator")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Destination CSV path (default stdout)")

	rootCmd.AddCommand(generateCmd)
}
