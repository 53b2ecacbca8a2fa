// Package ui provides operator-facing terminal I/O for the onboard CLI.
//
// Output uses Lipgloss to render styled, run-once components. None of them
// need interaction; they print and return.
//
// # Architecture
//
//   - Header: command banner showing the operation and its target
//   - Result: success or failure boxes with details and troubleshooting tips
//   - Printer: writes components, tables and JSON to an io.Writer
//   - Prompter: line-based prompts and numbered lists over a reader/writer
//
// Interactive group selection lives in the selector package; everything
// here is plain line I/O so it works in pipes and tests.
//
// # Output Formats
//
// A Printer created with FormatJSON skips decorative components and encodes
// results as indented JSON, for scripting:
//
//	p := ui.NewPrinter(os.Stdout, ui.FormatJSON)
//	p.PrintSuccess("Group created", fields, group)
//
// # Logging Integration
//
// zap logging is controlled by ONBOARD_LOG_LEVEL and writes to stderr, so
// styled output on stdout stays clean.
package ui
