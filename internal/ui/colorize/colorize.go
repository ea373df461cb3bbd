package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// getDSLLexer returns an appropriate lexer for the call-expression-shaped
// action/parameter DSL, with fallbacks since no chroma lexer targets this
// grammar directly — a C-family lexer tokenizes keyword(args, ...) shapes
// close enough to be useful.
func getDSLLexer() chroma.Lexer {
	candidates := []string{"go", "c", "scheme"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getActionStyle returns the action-DSL style with fallbacks
func getActionStyle() *chroma.Style {
	candidates := []string{"action-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// IsDisabled returns true if colors are disabled via environment
func IsDisabled() bool {
	return os.Getenv("SCTE_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

// ActionExpr colorizes an action/parameter DSL expression using Chroma.
func ActionExpr(expr string) string {
	if IsDisabled() {
		return expr
	}

	lexer := getDSLLexer()
	if lexer == nil {
		return expr
	}

	style := getActionStyle()
	formatter := getTerminalFormatter()

	iterator, err := lexer.Tokenise(nil, expr)
	if err != nil {
		return expr
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return expr
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// Tag formats a hashtag in light pink
func Tag(tag string) string {
	if IsDisabled() {
		return tag
	}
	return fmt.Sprintf("\033[38;2;255;180;200m%s\033[0m", tag)
}

// Detail formats detail text in light gray
func Detail(detail string) string {
	if IsDisabled() {
		return detail
	}
	return fmt.Sprintf("\033[38;2;180;180;180m%s\033[0m", detail)
}

// Key formats a captured key in red (high visibility)
func Key(key string) string {
	if IsDisabled() {
		return key
	}
	return fmt.Sprintf("\033[38;2;255;80;80m%s\033[0m", key)
}

// Border formats border characters in dark gray
func Border(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;80;80;80m%s\033[0m", s)
}

// Header formats header text in blue (IDA style)
func Header(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;86;156;214m%s\033[0m", s)
}

// Error formats error messages in pink
func Error(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;255;128;192m%s\033[0m", s)
}
