package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/edge/internal/kernels"
)

// DepthHandler prints the reduction depth split for each width argument.
func DepthHandler(cmd *cobra.Command, args []string) error {
	scale, err := cmd.Flags().GetInt("scale")
	if err != nil {
		return err
	}

	var data [][]string
	for _, arg := range args {
		width, err := strconv.Atoi(arg)
		if err != nil || width < 1 {
			return fmt.Errorf("invalid reduction width %q", arg)
		}

		d := kernels.DepthFor(width, scale)
		data = append(data, []string{
			strconv.Itoa(width),
			strconv.Itoa(d.Levels()),
			strconv.Itoa(d.H1),
			strconv.Itoa(d.H2),
		})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"WIDTH", "LEVELS", "H1", "H2"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func newDepthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depth WIDTH [WIDTH...]",
		Short: "Show reduction depth parameters for MatMul/Conv widths",
		Args:  cobra.MinimumNArgs(1),
		RunE:  DepthHandler,
	}
	cmd.Flags().Int("scale", 0, "Levels in the rescale phase (H1), clamped to the level count")
	return cmd
}
