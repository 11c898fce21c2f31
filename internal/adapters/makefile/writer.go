// Package makefile writes build rules in make syntax.
package makefile

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Header is the first line of every generated script.
const Header = "# Code generated by svgmake; DO NOT EDIT."

// Writer implements ports.RuleWriter on top of an io.Writer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer. Call Flush once all rules are written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the generated-code marker.
func (mw *Writer) WriteHeader() error {
	if _, err := mw.w.WriteString(Header + "\n\n"); err != nil {
		return zerr.Wrap(err, domain.ErrRuleWriteFailed.Error())
	}
	return nil
}

// WriteRule writes an optional .PHONY declaration, the target line and its
// tab-indented commands, followed by a blank line.
func (mw *Writer) WriteRule(rule domain.Rule) error {
	var b strings.Builder

	target := EscapeTarget(rule.Target)
	if rule.Phony {
		b.WriteString(".PHONY: " + target + "\n")
	}

	b.WriteString(target + ":")
	for _, prereq := range rule.Prerequisites {
		b.WriteString(" " + EscapeTarget(prereq))
	}
	b.WriteString("\n")

	for _, cmd := range rule.Commands {
		b.WriteString("\t" + cmd + "\n")
	}
	b.WriteString("\n")

	if _, err := mw.w.WriteString(b.String()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRuleWriteFailed.Error()), "target", rule.Target)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (mw *Writer) Flush() error {
	if err := mw.w.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrRuleWriteFailed.Error())
	}
	return nil
}

// EscapeTarget escapes spaces in a target or prerequisite name.
func EscapeTarget(name string) string {
	return strings.ReplaceAll(name, " ", `\ `)
}
