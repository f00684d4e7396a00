package cmd

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
)

var traceOps []string

var traceCmd = &cobra.Command{
	Use:   "trace <wheel_file>",
	Short: "Print the draw calls of a wheel",
	Long: `Draw the wheel on a recording surface and print every call in order.

Examples:
  wheel trace prizes.wheel                      # All calls
  wheel trace prizes.wheel --op stroke --op fill`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringSliceVar(&traceOps, "op", nil, "only print calls of these operations")
}

func runTrace(cmd *cobra.Command, args []string) error {
	props, err := loadProps(args[0])
	if err != nil {
		return fmt.Errorf("error loading wheel: %w", err)
	}
	width, height, err := props.Size()
	if err != nil {
		return err
	}

	rec := canvas.NewRecorder(width, height)
	r := wheel.Renderer{Logger: slog.Default()}
	if err := r.Draw(rec, props.Data, props.Style); err != nil {
		return fmt.Errorf("error drawing wheel: %w", err)
	}

	calls := rec.Calls
	if len(traceOps) > 0 {
		calls = nil
		for _, c := range rec.Calls {
			if slices.Contains(traceOps, string(c.Op)) {
				calls = append(calls, c)
			}
		}
	}

	for i, c := range calls {
		fmt.Printf("%4d %s\n", i, c)
	}
	fmt.Printf("%d calls\n", len(calls))
	return nil
}
