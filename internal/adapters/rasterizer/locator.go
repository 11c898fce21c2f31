// Package rasterizer locates external SVG rasterizers and renders their command lines.
package rasterizer

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// System abstracts the host facts the search depends on.
type System struct {
	GOOS         string
	Getenv       func(key string) string
	IsExecutable func(path string) bool
	// Executable returns the path of the running program, used by the builtin backend.
	Executable func() (string, error)
}

// HostSystem returns the System of the running process.
func HostSystem() System {
	return System{
		GOOS:         runtime.GOOS,
		Getenv:       os.Getenv,
		IsExecutable: isExecutable,
		Executable:   os.Executable,
	}
}

// Locator implements ports.RasterizerLocator.
type Locator struct {
	shell    ports.Shell
	sys      System
	platform domain.Platform
}

// NewLocator creates a Locator quoting commands with shell.
func NewLocator(shell ports.Shell, sys System) *Locator {
	return &Locator{
		shell:    shell,
		sys:      sys,
		platform: domain.PlatformFor(sys.GOOS),
	}
}

// Names returns the external backends in descending priority followed by the builtin backend.
func (l *Locator) Names() []string {
	names := make([]string, 0, len(backends)+1)
	for _, b := range backends {
		names = append(names, b.name)
	}
	return append(names, domain.RasterizerBuiltin)
}

// Find searches the host for the named backend.
func (l *Locator) Find(name string) (ports.Rasterizer, error) {
	if name == domain.RasterizerBuiltin {
		self, err := l.sys.Executable()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRasterizerNotFound.Error()), "rasterizer", name)
		}
		return l.Open(name, self)
	}

	b, ok := lookup(name)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownRasterizer, "rasterizer", name)
	}

	for _, candidate := range l.candidates(b) {
		if l.usable(b, candidate) {
			return l.bind(b.name, candidate, b.command), nil
		}
	}

	return nil, zerr.With(domain.ErrRasterizerNotFound, "rasterizer", name)
}

// Open binds the named backend to path without searching.
func (l *Locator) Open(name, path string) (ports.Rasterizer, error) {
	if name == domain.RasterizerBuiltin {
		return l.bind(name, path, builtinCommand), nil
	}

	b, ok := lookup(name)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownRasterizer, "rasterizer", name)
	}
	return l.bind(b.name, path, b.command), nil
}

func (l *Locator) bind(name, path string, command commandFunc) *Rasterizer {
	return &Rasterizer{
		name:    name,
		path:    path,
		quote:   l.shell.Quote,
		command: command,
	}
}

// candidates lists the paths to probe in order: each executable name as given,
// then inside every PATH entry, then inside the backend's search paths.
func (l *Locator) candidates(b backend) []string {
	searchPaths := slices.Clone(b.searchPaths[l.platform])
	if b.envSearchPath != "" {
		if extra := l.sys.Getenv(b.envSearchPath); extra != "" {
			searchPaths = append(searchPaths, extra)
		}
	}

	pathEntries := filepath.SplitList(l.sys.Getenv("PATH"))

	var out []string
	for _, exe := range b.executables[l.platform] {
		out = append(out, exe)
		for _, dir := range pathEntries {
			dir = strings.Trim(dir, `"`)
			if dir == "" {
				continue
			}
			out = append(out, filepath.Join(dir, exe))
		}
		for _, dir := range searchPaths {
			out = append(out, filepath.Join(dir, exe))
		}
	}
	return out
}

func (l *Locator) usable(b backend, path string) bool {
	if slices.Contains(b.excluded[l.platform], path) {
		return false
	}
	return l.sys.IsExecutable(path)
}

func lookup(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
