// Package shell renders quoting and file commands for the generated script.
package shell

import (
	"regexp"
	"strings"

	"go.trai.ch/svgmake/internal/core/domain"
)

var unsafeChars = regexp.MustCompile(`[^\w@%+=:,./-]`)

// Dialect implements ports.Shell for one platform.
type Dialect struct {
	platform domain.Platform
}

// NewDialect creates a Dialect producing commands for platform.
func NewDialect(platform domain.Platform) *Dialect {
	return &Dialect{platform: platform}
}

// Quote returns s as a single shell word. Strings made only of safe characters
// are returned unchanged on every platform.
func (d *Dialect) Quote(s string) string {
	if s != "" && !unsafeChars.MatchString(s) {
		return s
	}
	if d.platform.IsWindows() {
		return `"` + s + `"`
	}
	return QuotePOSIX(s)
}

// Copy returns the command copying from to to.
func (d *Dialect) Copy(from, to string) string {
	if d.platform.IsWindows() {
		return "copy /Y " + d.Quote(from) + " " + d.Quote(to)
	}
	return "cp " + d.Quote(from) + " " + d.Quote(to)
}

// Delete returns the command removing path.
func (d *Dialect) Delete(path string) string {
	if d.platform.IsWindows() {
		return "del /S /Q " + d.Quote(path)
	}
	return "rm -rf " + d.Quote(path)
}

// QuotePOSIX quotes s for a POSIX shell. Strings made only of safe characters
// are returned unchanged.
func QuotePOSIX(s string) string {
	if s == "" {
		return "''"
	}
	if !unsafeChars.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
