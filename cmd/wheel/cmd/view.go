package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/internal/ui/wheelview"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelfile"
)

var viewCmd = &cobra.Command{
	Use:   "view <wheel_file>",
	Short: "Show a wheel in a window",
	Long: `Opens the wheel in a Gio window. The file is watched and the view
redraws whenever a saved change alters the wheel.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	props, err := loadProps(filename)
	if err != nil {
		return fmt.Errorf("error loading wheel: %w", err)
	}

	c := wheelcanvas.New(wheelcanvas.WithLogger(slog.Default()))
	if _, err := c.Update(props); err != nil {
		return fmt.Errorf("error drawing wheel: %w", err)
	}

	updates := make(chan wheelcanvas.Props, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(updates)
		logCtx := logging.PackageCtx("view")
		err := wheelfile.Watch(ctx, filename, func(p wheelcanvas.Props, err error) {
			if err != nil {
				slog.WarnContext(logCtx, "reload failed", "path", filename, "error", err)
				return
			}
			applyOverrides(&p)
			updates <- p
		})
		if err != nil {
			slog.ErrorContext(logCtx, "watch stopped", "path", filename, "error", err)
		}
	}()

	width, height, _ := props.Size()

	// Run the Gio application
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Wheel - " + filename))
		w.Option(app.Size(unit.Dp(width), unit.Dp(height)))

		err := wheelview.Run(w, c, updates)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}
