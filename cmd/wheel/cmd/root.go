package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelfile"
)

var (
	// Global flags
	verbose bool
	cfgFile string
)

// Style settings that flags, WHEEL_* variables and the config file can
// override on top of the wheel file.
const (
	keyFontSize      = "font-size"
	keyInnerRadius   = "inner-radius"
	keyTextDistance  = "text-distance"
	keyPerpendicular = "perpendicular"
)

var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Wheel of fortune renderer",
	Long: `Render prize wheels described in .wheel, JSON, YAML or TOML files.

Examples:
  wheel render prizes.wheel -o prizes.png    # Render to PNG
  wheel layout prizes.wheel                  # Print slice geometry
  wheel trace prizes.yaml                    # Print the draw calls
  wheel view prizes.wheel                    # Live view, reloads on save`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wheel.yaml)")

	flags.Float64(keyFontSize, 0, "override style font size")
	flags.Float64(keyInnerRadius, 0, "override inner radius (percent of the outer radius)")
	flags.Float64(keyTextDistance, 0, "override label distance (percent of the outer radius)")
	flags.Bool(keyPerpendicular, false, "override perpendicular label orientation")

	bindOverrides()
}

// bindOverrides ties the override flags to their viper keys.
func bindOverrides() {
	flags := rootCmd.PersistentFlags()
	for _, key := range []string{keyFontSize, keyInnerRadius, keyTextDistance, keyPerpendicular} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wheel")
	}

	viper.SetEnvPrefix("wheel")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

// loadProps reads a wheel file and applies the style overrides.
func loadProps(path string) (wheelcanvas.Props, error) {
	props, err := wheelfile.Load(path)
	if err != nil {
		return wheelcanvas.Props{}, err
	}
	applyOverrides(&props)
	return props, nil
}

func applyOverrides(p *wheelcanvas.Props) {
	if viper.IsSet(keyFontSize) {
		p.Style.FontSize = viper.GetFloat64(keyFontSize)
	}
	if viper.IsSet(keyInnerRadius) {
		p.Style.InnerRadius = viper.GetFloat64(keyInnerRadius)
	}
	if viper.IsSet(keyTextDistance) {
		p.Style.TextDistance = viper.GetFloat64(keyTextDistance)
	}
	if viper.IsSet(keyPerpendicular) {
		p.Style.PerpendicularText = viper.GetBool(keyPerpendicular)
	}
}
