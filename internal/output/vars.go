package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37")) // dark green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"info":    "ℹ",
	"arrow":   "→",
}

// Printer writes styled, newline-terminated messages to w.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Success(text string) { fmt.Fprintln(p.w, successStyle.Render(text)) }
func (p *Printer) Error(text string)   { fmt.Fprintln(p.w, errorStyle.Render(text)) }
func (p *Printer) Warning(text string) { fmt.Fprintln(p.w, warningStyle.Render(text)) }
func (p *Printer) Info(text string)    { fmt.Fprintln(p.w, infoStyle.Render(text)) }

// Blank writes n empty lines.
func (p *Printer) Blank(n int) { fmt.Fprint(p.w, strings.Repeat("\n", n)) }

// Plain writes text unstyled.
func (p *Printer) Plain(text string) { fmt.Fprintln(p.w, text) }

var stdout = NewPrinter(os.Stdout)

func PrintSuccess(text string) { stdout.Success(text) }
func PrintError(text string)   { stdout.Error(text) }
func PrintWarning(text string) { stdout.Warning(text) }
func PrintInfo(text string)    { stdout.Info(text) }
func PrintPlain(text string)   { stdout.Plain(text) }
