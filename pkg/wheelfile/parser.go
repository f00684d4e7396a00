package wheelfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

// Parser reads .wheel documents
type Parser struct {
	parser *participle.Parser[Document]
}

// NewParser creates a new .wheel parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Document](
		participle.Lexer(WheelLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a document from a reader; name is used in positions.
func (p *Parser) Parse(name string, r io.Reader) (wheelcanvas.Props, error) {
	doc, err := p.parser.Parse(name, r)
	if err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("parse error: %w", err)
	}
	return doc.Props()
}

// ParseString parses a document held in a string
func (p *Parser) ParseString(input string) (wheelcanvas.Props, error) {
	doc, err := p.parser.ParseString("", input)
	if err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("parse error: %w", err)
	}
	return doc.Props()
}

// ParseFile parses a .wheel file from a file path
func (p *Parser) ParseFile(filename string) (wheelcanvas.Props, error) {
	file, err := os.Open(filename)
	if err != nil {
		return wheelcanvas.Props{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// Props converts the document into view props, starting from
// wheelcanvas.DefaultProps. Later declarations override earlier ones.
func (d *Document) Props() (wheelcanvas.Props, error) {
	props := wheelcanvas.DefaultProps()

	for _, decl := range d.Decls {
		switch {
		case decl.Size != nil:
			props.Width = decl.Size.Width
			props.Height = decl.Size.Height

		case decl.Style != nil:
			for _, s := range decl.Style.Settings {
				if err := applyStyle(&props.Style, s); err != nil {
					return wheelcanvas.Props{}, err
				}
			}

		case decl.Slice != nil:
			slice := wheel.Slice{Option: decl.Slice.Label}
			if decl.Slice.Block != nil {
				for _, s := range decl.Slice.Block.Settings {
					if err := applySlice(&slice, s); err != nil {
						return wheelcanvas.Props{}, err
					}
				}
			}
			props.Data = append(props.Data, slice)
		}
	}

	return props, nil
}

func applyStyle(st *wheel.Style, s *Setting) error {
	var err error
	switch s.Key {
	case "outer_border_color":
		st.OuterBorderColor, err = s.Value.text(s)
	case "outer_border_width":
		st.OuterBorderWidth, err = s.Value.number(s)
	case "inner_radius":
		st.InnerRadius, err = s.Value.number(s)
	case "inner_border_color":
		st.InnerBorderColor, err = s.Value.text(s)
	case "inner_border_width":
		st.InnerBorderWidth, err = s.Value.number(s)
	case "radius_line_color":
		st.RadiusLineColor, err = s.Value.text(s)
	case "radius_line_width":
		st.RadiusLineWidth, err = s.Value.number(s)
	case "font_size":
		st.FontSize, err = s.Value.number(s)
	case "perpendicular_text":
		st.PerpendicularText, err = s.Value.boolean(s)
	case "text_distance":
		st.TextDistance, err = s.Value.number(s)
	default:
		return fmt.Errorf("%s: unknown style setting %q", s.Pos, s.Key)
	}
	return err
}

func applySlice(sl *wheel.Slice, s *Setting) error {
	var err error
	switch s.Key {
	case "text_color":
		sl.Style.TextColor, err = s.Value.text(s)
	default:
		return fmt.Errorf("%s: unknown slice setting %q", s.Pos, s.Key)
	}
	return err
}

func (v *Value) text(s *Setting) (string, error) {
	if v.Str == nil {
		return "", fmt.Errorf("%s: %s wants a string", s.Pos, s.Key)
	}
	return *v.Str, nil
}

func (v *Value) number(s *Setting) (float64, error) {
	if v.Num == nil {
		return 0, fmt.Errorf("%s: %s wants a number", s.Pos, s.Key)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(*v.Num, "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", s.Pos, s.Key, err)
	}
	return f, nil
}

func (v *Value) boolean(s *Setting) (bool, error) {
	if v.Bool == nil {
		return false, fmt.Errorf("%s: %s wants true or false", s.Pos, s.Key)
	}
	return bool(*v.Bool), nil
}
