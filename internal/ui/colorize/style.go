// Package colorize provides syntax highlighting for action/parameter DSL
// text printed by the CLI (parse results, profile dumps, debug output).
package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register our custom action-DSL style on package initialization
	_ = ActionDark
}

// Theme colors, carried over from the disassembly palette this package
// started life with — it reads just as well over keyword/number/string DSL
// tokens as it did over mnemonic/register/hex tokens.
const (
	ThemeKeyword = "#FFFFFF" // White for action keywords
	ThemeName    = "#87CEEB" // Light blue for constant names
	ThemeNumber  = "#FF80C0" // Light pink for numbers
	ThemeLabel   = "#FFC800" // Yellow for labels/function names
	ThemeComment = "#FF8000" // Orange for comments
	ThemeString  = "#00FF00" // Green for strings
	ThemeDim     = "#646464" // Dark gray for de-emphasized text
)

// ActionDark is a custom style for action/parameter DSL text.
var ActionDark = styles.Register(chroma.MustNewStyle("action-dark", chroma.StyleEntries{
	chroma.Text:           "#FFFFFF",    // White default
	chroma.Background:     "bg:#000000", // Pure black background
	chroma.Comment:        "#FF8000",    // Orange comments
	chroma.CommentPreproc: "#FF8000",    // Same for preprocessor comments

	// Action keywords (button, macro, dpad, ...) in white
	chroma.Keyword:       "#FFFFFF",
	chroma.KeywordPseudo: "#FFFFFF",
	chroma.Name:          "#87CEEB", // Constant names (Keys.*, Axes.*) in cyan
	chroma.NameBuiltin:   "#87CEEB",
	chroma.NameVariable:  "#87CEEB",

	// Numbers - pink like IDA
	chroma.LiteralNumber:        "#FF80C0", // Decimal numbers in pink
	chroma.LiteralNumberHex:     "#FF80C0", // Hex numbers in pink
	chroma.LiteralNumberBin:     "#FF80C0", // Binary numbers in pink
	chroma.LiteralNumberOct:     "#FF80C0", // Octal numbers in pink
	chroma.LiteralNumberInteger: "#FF80C0", // Integer literals in pink
	chroma.LiteralNumberFloat:   "#FF80C0", // Float literals in pink

	// Labels and symbols
	chroma.NameLabel:    "#FFC800", // Labels in yellow
	chroma.NameFunction: "#FFFFFF", // Instructions as functions in white

	// Operators and punctuation
	chroma.Operator:    "#FFFFFF", // Operators in white
	chroma.Punctuation: "#FFFFFF", // Punctuation in white

	// Strings
	chroma.String: "#00FF00", // Strings in green
}))
