// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output prints user-facing status messages for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes info, success, warning and error lines. Status lines go
// to err so that article output on out stays machine-readable.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ResolveColors reports whether colored output should be used. NO_COLOR
// and TERM=dumb always disable colors.
func ResolveColors(disabled bool) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return !color.NoColor
}

// NewPrinter creates a printer for stdout/stderr.
func NewPrinter(useColors bool) *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, useColors)
}

// NewPrinterWithWriters creates a printer with custom writers.
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Out returns the writer for primary output.
func (p *Printer) Out() io.Writer { return p.out }

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	p.line(color.FgCyan, "", format, args...)
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	p.line(color.FgGreen, "[OK] ", format, args...)
}

// Warning prints a non-fatal warning.
func (p *Printer) Warning(format string, args ...any) {
	p.line(color.FgYellow, "warning: ", format, args...)
}

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) {
	p.line(color.FgRed, "error: ", format, args...)
}

// Progress prints "{journal} done (i/n)", marking failures.
func (p *Printer) Progress(done, total int, journal string, failed bool) {
	status := "done"
	attr := color.FgBlue
	if failed {
		status = "failed"
		attr = color.FgYellow
	}
	p.line(attr, "", "%s %s (%d/%d)", journal, status, done, total)
}

func (p *Printer) line(attr color.Attribute, prefix, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	if p.useColors {
		c := color.New(attr)
		c.EnableColor()
		c.Fprintln(p.err, msg)
		return
	}
	fmt.Fprintln(p.err, msg)
}
