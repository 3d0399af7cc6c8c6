package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Output destinations for all user-facing messages. Tests swap these out.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	bannerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// SetOutput redirects standard messages to w. Used by tests.
func SetOutput(w io.Writer) {
	stdout = w
}

// SetErrorOutput redirects error and warning messages to w. Used by tests.
func SetErrorOutput(w io.Writer) {
	stderr = w
}

// FormatBanner formats a phase banner with a consistent structure
func FormatBanner(message string) string {
	return fmt.Sprintf("=== %s ===", message)
}

// FormatStep formats a numbered pipeline step with a consistent structure
func FormatStep(step int, total int, message string) string {
	return fmt.Sprintf("[%d/%d] %s...", step, total, message)
}

// FormatWarning formats a warning message with a consistent structure
func FormatWarning(message string) string {
	return fmt.Sprintf("[ATTENTION] %s", message)
}

// FormatSuccess formats a success message with a consistent structure
func FormatSuccess(message string) string {
	return fmt.Sprintf("[OK] %s", message)
}

// FormatInfo formats an info message with a consistent structure
func FormatInfo(message string) string {
	return fmt.Sprintf("[INFO] %s", message)
}

// PrintBanner prints a phase banner
func PrintBanner(message string) {
	bannerColor.Fprintln(stdout, FormatBanner(message))
}

// PrintStep prints a numbered pipeline step
func PrintStep(step int, total int, message string) {
	fmt.Fprintln(stdout, FormatStep(step, total, message))
}

// PrintCommandOutput echoes the raw output of an external command, ensuring
// it ends with a newline so following messages start on their own line
func PrintCommandOutput(output string) {
	if output == "" {
		return
	}
	fmt.Fprint(stdout, output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(stdout)
	}
}

// PrintPrompt prints a prompt without a trailing newline
func PrintPrompt(message string) {
	fmt.Fprint(stdout, message)
}

// PrintError prints an error message with the appropriate error code and exits with code 1
func PrintError(code string, description string, err error) {
	errorColor.Fprintln(stderr, FormatError(code, description, err))
	os.Exit(1)
}

// PrintErrorNoExit prints an error message with the appropriate error code without exiting
func PrintErrorNoExit(code string, description string, err error) {
	errorColor.Fprintln(stderr, FormatError(code, description, err))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	warningColor.Fprintln(stderr, FormatWarning(message))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	successColor.Fprintln(stdout, FormatSuccess(message))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Fprintln(stdout, FormatInfo(message))
}
