package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <wheel_file>",
	Short: "Print the wheel geometry",
	Long: `Print the computed geometry of a wheel: radii, slice angles,
gradient assignment and label anchors. Angles are degrees clockwise
from the pointer.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func runLayout(cmd *cobra.Command, args []string) error {
	props, err := loadProps(args[0])
	if err != nil {
		return fmt.Errorf("error loading wheel: %w", err)
	}
	width, height, err := props.Size()
	if err != nil {
		return err
	}

	l, err := wheel.NewLayout(width, height, props.Data, props.Style)
	if err != nil {
		return fmt.Errorf("error computing layout: %w", err)
	}

	fmt.Printf("Surface: %dx%d\n", l.Width, l.Height)
	fmt.Printf("Center: (%.2f, %.2f)\n", l.CenterX, l.CenterY)
	fmt.Printf("Outside radius: %.2f\n", l.OutsideRadius)
	fmt.Printf("Inside radius: %.2f\n", l.InsideRadius)
	fmt.Printf("Text radius: %.2f\n", l.TextRadius)
	fmt.Printf("Step: %.2f°\n", degrees(l.Step))
	fmt.Printf("Line widths: outer %.1f, inner %.1f, radius %.1f\n",
		l.OuterBorderWidth, l.InnerBorderWidth, l.RadiusLineWidth)
	fmt.Printf("Font size: %.1f\n", l.FontSize)

	fmt.Printf("\nSlices (%d):\n", len(l.Slices))
	for _, s := range l.Slices {
		fmt.Printf("  %2d %-20q %7.2f° - %7.2f°  %-6s label (%.2f, %.2f) rot %.2f°\n",
			s.Index, s.Option, degrees(s.Start), degrees(s.End), s.Gradient,
			s.LabelX, s.LabelY, degrees(s.LabelRotation))
	}

	fmt.Printf("\nMarker: (%.2f, %.2f)\n", l.MarkerX, l.MarkerY)
	return nil
}
