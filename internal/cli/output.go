package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// stdout handles ANSI sequences on platforms whose terminals do not.
var stdout io.Writer = colorable.NewColorableStdout()

// colorEnabled reports whether colored output should be produced.
func colorEnabled() bool {
	if globalNoColor {
		return false
	}
	if cfg != nil && !cfg.Output.Color {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printResult prints command output that must appear even in quiet mode,
// such as the rendered gitignore for --show-gitignore.
func printResult(msg string) {
	fmt.Fprint(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Fprintf(stdout, "%s✓%s %s\n", colorGreen, colorReset, msg)
	} else {
		fmt.Fprintf(stdout, "✓ %s\n", msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled() {
		fmt.Fprintf(stdout, "%s⚠%s %s\n", colorYellow, colorReset, msg)
	} else {
		fmt.Fprintf(stdout, "⚠ %s\n", msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if colorEnabled() {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

// printName prints a template name, underlining the matched term when
// color is available.
func printName(name, term string) {
	if globalQuiet {
		return
	}
	if term == "" || !colorEnabled() {
		fmt.Fprintln(stdout, name)
		return
	}
	fmt.Fprintln(stdout, underlineMatch(name, term))
}

// underlineMatch underlines the first case-insensitive occurrence of term
// in name.
func underlineMatch(name, term string) string {
	idx := strings.Index(strings.ToLower(name), strings.ToLower(term))
	if idx < 0 {
		return name
	}
	const underline = "\033[4m"
	end := idx + len(term)
	return name[:idx] + underline + name[idx:end] + colorReset + name[end:]
}
