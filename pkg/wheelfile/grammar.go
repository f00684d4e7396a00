package wheelfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// WheelLexer defines the lexical structure of .wheel files
var WheelLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// String literals with escape sequences
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?\d+(?:\.\d+)?(?:px)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}=]`},
})

// Document is the root of a .wheel file.
//
//	size 500 x 500
//	style { font_size = 18  perpendicular_text = true }
//	slice "Prize" { text_color = "white" }
//	slice "Try again"
type Document struct {
	Pos   lexer.Position
	Decls []*Decl `@@*`
}

// Decl is one top-level declaration.
type Decl struct {
	Pos   lexer.Position
	Size  *SizeDecl  `  "size" @@`
	Style *Block     `| "style" @@`
	Slice *SliceDecl `| "slice" @@`
}

// SizeDecl is "size <width> x <height>".
type SizeDecl struct {
	Width  string `@Number "x"`
	Height string `@Number`
}

// SliceDecl is a labeled slice with optional settings.
type SliceDecl struct {
	Pos   lexer.Position
	Label string `@String`
	Block *Block `@@?`
}

// Block is a brace-delimited list of settings.
type Block struct {
	Settings []*Setting `"{" @@* "}"`
}

// Setting is "key = value".
type Setting struct {
	Pos   lexer.Position
	Key   string `@Ident "="`
	Value *Value `@@`
}

// Value is a string, number or boolean literal.
type Value struct {
	Str  *string  `  @String`
	Num  *string  `| @Number`
	Bool *Boolean `| @("true" | "false")`
}

// Boolean captures true/false keywords.
type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}
