package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <wheel_file>",
	Short: "Render a wheel to PNG",
	Long: `Render the wheel described by a file to a PNG image.

Without -o the image is written next to the input with a .png extension.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output PNG path")
}

func runRender(cmd *cobra.Command, args []string) error {
	filename := args[0]

	props, err := loadProps(filename)
	if err != nil {
		return fmt.Errorf("error loading wheel: %w", err)
	}

	out := renderOutput
	if out == "" {
		out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".png"
	}

	c := wheelcanvas.New(wheelcanvas.WithLogger(slog.Default()))
	if _, err := c.Update(props); err != nil {
		return fmt.Errorf("error drawing wheel: %w", err)
	}

	err = c.Surface(func(im *canvas.Image) error {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		if err := im.EncodePNG(f); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode %s: %w", out, err)
		}
		return f.Close()
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%sx%s, %d slices)\n", out, props.Width, props.Height, len(props.Data))
	return nil
}
