package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/pkg/diff"
)

var (
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)

	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	writeClipboard = clipboard.WriteAll
)

// SetOutput redirects status output and diagnostics.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// SetClipboardWriter replaces the function CopySnippet uses to reach the
// system clipboard.
func SetClipboardWriter(fn func(string) error) {
	writeClipboard = fn
}

// DisableColor turns off ANSI styling for every printer.
func DisableColor() {
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(stdout, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(stdout, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(stderr, format+"\n", a...)
}

// --- Reports ---

// PrintRemediation explains that no insertion point was found and shows the
// snippet to add by hand.
func PrintRemediation(funcName, snippet string) {
	ErrorColor.Fprintln(stdout, "ERROR: Could not find insertion point. Your file may have different structure.")
	fmt.Fprintf(stdout, "Please add this at the start of %s (right after the opening brace):\n", funcName)
	// Styled per line so copied text carries no padding.
	for _, line := range strings.Split(snippet, "\n") {
		fmt.Fprintln(stdout, snippetStyle.Render(line))
	}
}

// PrintDiff writes a unified diff between the file on disk and the content
// a real run would write.
func PrintDiff(path, original, patched string) error {
	return diff.Text("a/"+path, "b/"+path, original, patched, stdout)
}

// CopySnippet puts snippet on the system clipboard.
func CopySnippet(snippet string) error {
	if err := writeClipboard(snippet); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
