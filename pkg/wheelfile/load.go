package wheelfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

// ErrUnknownFormat is returned for file extensions Load cannot read.
var ErrUnknownFormat = errors.New("wheelfile: unknown format")

// Format names a wheel description encoding.
type Format string

const (
	FormatWheel Format = "wheel"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// FormatOf maps a file name to its format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wheel":
		return FormatWheel, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads view props from a .wheel, .json, .yaml/.yml or .toml file.
// Values missing from the file keep their wheelcanvas.DefaultProps value.
func Load(path string) (wheelcanvas.Props, error) {
	format, err := FormatOf(path)
	if err != nil {
		return wheelcanvas.Props{}, err
	}

	if format == FormatWheel {
		p, err := NewParser()
		if err != nil {
			return wheelcanvas.Props{}, err
		}
		return p.ParseFile(path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(string(format))
	if err := v.ReadInConfig(); err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decode(v)
}

// Read parses props of the given format from r.
func Read(r io.Reader, format Format) (wheelcanvas.Props, error) {
	switch format {
	case FormatWheel:
		p, err := NewParser()
		if err != nil {
			return wheelcanvas.Props{}, err
		}
		return p.Parse("", r)
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return wheelcanvas.Props{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	v := viper.New()
	v.SetConfigType(string(format))
	if err := v.ReadConfig(r); err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("failed to read %s: %w", format, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (wheelcanvas.Props, error) {
	props := wheelcanvas.DefaultProps()
	if err := v.Unmarshal(&props); err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("failed to decode props: %w", err)
	}
	return props, nil
}
