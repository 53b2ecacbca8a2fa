package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Format selects how a Printer renders results
type Format string

const (
	FormatDetailed Format = "detailed"
	FormatJSON     Format = "json"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatDetailed, FormatJSON:
		return Format(s), nil
	case "":
		return FormatDetailed, nil
	default:
		return "", fmt.Errorf("invalid format %q (use detailed or json)", s)
	}
}

// Printer provides methods for printing UI components to a writer.
// This is the primary way commands should output results.
type Printer struct {
	out    io.Writer
	width  int
	format Format
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer, format Format) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = FormatDetailed
	}
	return &Printer{
		out:    w,
		width:  widthOf(w),
		format: format,
	}
}

// Width returns the rendering width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// JSON reports whether the printer emits JSON
func (p *Printer) JSON() bool {
	return p.format == FormatJSON
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box. Skipped in JSON mode.
func (p *Printer) PrintHeader(title, command string, params ...Field) {
	if p.JSON() {
		return
	}
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
	p.Newline()
}

// PrintSuccess prints a success result box, or payload as JSON in JSON mode
func (p *Printer) PrintSuccess(title string, details []Field, payload interface{}) error {
	if p.JSON() {
		return p.PrintJSON(payload)
	}
	result := NewSuccessResult(title, details...).SetWidth(p.width)
	p.Println(result.Render())
	return nil
}

// PrintError prints an error result box with the FusionAuth error listing
// and troubleshooting tips. In JSON mode it prints an error object.
func (p *Printer) PrintError(title string, err error, details string, troubleshooting []string) {
	if p.JSON() {
		obj := map[string]interface{}{"error": title}
		if err != nil {
			obj["message"] = err.Error()
		}
		if details != "" {
			obj["details"] = details
		}
		if len(troubleshooting) > 0 {
			obj["troubleshooting"] = troubleshooting
		}
		_ = p.PrintJSON(obj)
		return
	}

	result := NewFailureResult(title, err, troubleshooting).SetWidth(p.width)
	result.ErrorDetails = details
	p.Println(result.Render())
}

// PrintJSON writes v as indented JSON
func (p *Printer) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// PrintTable prints rows under headers, or payload as JSON in JSON mode
func (p *Printer) PrintTable(headers []string, rows [][]string, payload interface{}) error {
	if p.JSON() {
		return p.PrintJSON(payload)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	p.Println(t.Render())
	return nil
}
