package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/edge/internal/bench"
	"github.com/born-ml/edge/internal/envconfig"
)

// BenchHandler runs the kernel benchmark and prints one row per kernel.
func BenchHandler(cmd *cobra.Command, _ []string) error {
	cfg := bench.Config{
		Iterations: int(envconfig.BenchIterations()),
		Seed:       envconfig.BenchSeed(),
		Logger:     slog.Default(),
	}

	if cmd.Flags().Changed("iterations") {
		n, err := cmd.Flags().GetInt("iterations")
		if err != nil {
			return err
		}
		cfg.Iterations = n
	}
	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		cfg.Seed = seed
	}
	size, err := cmd.Flags().GetString("size")
	if err != nil {
		return err
	}
	cfg.Size = bench.Size(size)

	results, err := bench.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	var data [][]string
	failed := 0
	for _, r := range results {
		status := "-"
		if r.HasReference() {
			status = strconv.FormatFloat(r.MaxAbsErr, 'g', 3, 64)
			if !r.Verified() {
				status += " FAIL"
				failed++
			}
		}
		data = append(data, []string{r.Kernel, r.Shape, strconv.FormatInt(r.PerOp.Nanoseconds(), 10), status})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"KERNEL", "SHAPE", "NS/OP", "MAX ABS ERR"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d kernel(s) exceeded tolerance %g", failed, bench.Tolerance)
	}
	return nil
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the kernels and check them against reference results",
		Args:  cobra.NoArgs,
		RunE:  BenchHandler,
	}
	cmd.Flags().Int("iterations", 100, "Timed calls per kernel")
	cmd.Flags().Int64("seed", 1, "Seed for random inputs")
	cmd.Flags().String("size", string(bench.Small), "Problem size (small, medium)")
	return cmd
}
