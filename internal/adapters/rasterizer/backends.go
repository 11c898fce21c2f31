package rasterizer

import (
	"strconv"

	"go.trai.ch/svgmake/internal/core/domain"
)

// Backend names.
const (
	NameImageMagick = domain.RasterizerImageMagick
	NameRsvg        = domain.RasterizerRsvg
	NameInkscape    = domain.RasterizerInkscape
)

// baseDPI is the density that renders an SVG at its nominal size.
const baseDPI = 90

type commandFunc func(quote func(string) string, exe, input, output string, scale int) string

// backend describes how to find and invoke one external rasterizer.
type backend struct {
	name     string
	priority int
	// executables, searchPaths and excluded are keyed by platform.
	executables map[domain.Platform][]string
	searchPaths map[domain.Platform][]string
	excluded    map[domain.Platform][]string
	// envSearchPath names an environment variable holding an extra search directory.
	envSearchPath string
	command       commandFunc
}

// backends is sorted by descending priority.
var backends = []backend{
	{
		name:     NameImageMagick,
		priority: 2,
		executables: map[domain.Platform][]string{
			domain.PlatformLinux:   {"convert"},
			domain.PlatformDarwin:  {"convert"},
			domain.PlatformWindows: {"convert.exe", "im-convert.exe"},
		},
		searchPaths: map[domain.Platform][]string{
			domain.PlatformDarwin: {"/opt/ImageMagick"},
		},
		excluded: map[domain.Platform][]string{
			domain.PlatformWindows: {`C:\Windows\system32\convert.exe`},
		},
		envSearchPath: "MAGICK_HOME",
		command: func(q func(string) string, exe, input, output string, scale int) string {
			return q(exe) + " -density " + strconv.Itoa(baseDPI*scale) + " -background none " + q(input) + " " + q(output)
		},
	},
	{
		name:     NameRsvg,
		priority: 1,
		executables: map[domain.Platform][]string{
			domain.PlatformLinux:   {"rsvg-convert"},
			domain.PlatformDarwin:  {"rsvg-convert"},
			domain.PlatformWindows: {"rsvg-convert.exe"},
		},
		command: func(q func(string) string, exe, input, output string, scale int) string {
			return q(exe) + " -f png -z " + strconv.Itoa(scale) + " -o " + q(output) + " " + q(input)
		},
	},
	{
		name:     NameInkscape,
		priority: 0,
		executables: map[domain.Platform][]string{
			domain.PlatformLinux:   {"inkscape"},
			domain.PlatformDarwin:  {"inkscape", "inkscape-bin"},
			domain.PlatformWindows: {"inkscape.exe"},
		},
		searchPaths: map[domain.Platform][]string{
			domain.PlatformDarwin:  {"/Applications/Inkscape.app/Contents/Resources/bin"},
			domain.PlatformWindows: {`C:\Program Files\Inkscape`, `C:\Program Files (x86)\Inkscape`},
		},
		command: func(q func(string) string, exe, input, output string, scale int) string {
			return q(exe) + " " + q(input) + " --export-dpi=" + strconv.Itoa(baseDPI*scale) + " --export-png=" + q(output)
		},
	},
}

func builtinCommand(q func(string) string, exe, input, output string, scale int) string {
	return q(exe) + " rasterize --scale " + strconv.Itoa(scale) + " " + q(input) + " " + q(output)
}

// Rasterizer is a backend bound to an executable path.
// It implements ports.Rasterizer.
type Rasterizer struct {
	name    string
	path    string
	quote   func(string) string
	command commandFunc
}

// Name returns the backend name.
func (r *Rasterizer) Name() string {
	return r.name
}

// Path returns the executable path.
func (r *Rasterizer) Path() string {
	return r.path
}

// Command returns the command line converting input to output at scale.
func (r *Rasterizer) Command(input, output string, scale int) string {
	return r.command(r.quote, r.path, input, output, scale)
}
