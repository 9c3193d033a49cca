package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Output behavior shared by every command, controlled by the root command's
// global flags.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// Confirm asks before a destructive operation, such as deleting a
// collection. The --yes flag answers every prompt affirmatively.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// statusf writes one status line, swapping the symbol for a plain prefix
// when color output is disabled.
func statusf(w io.Writer, symbol, prefix, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", prefix, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		statusf(os.Stdout, "✓", "OK", format, args...)
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		statusf(os.Stdout, "ℹ", "INFO", format, args...)
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	statusf(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	statusf(os.Stderr, "✗", "ERROR", format, args...)
}
