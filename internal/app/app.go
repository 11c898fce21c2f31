// Package app implements the application layer for svgmake.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/svgmake/internal/adapters/makefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/svgmake/internal/engine/collector"
	"go.trai.ch/svgmake/internal/engine/generator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	metadata     ports.MetadataReader
	locator      ports.RasterizerLocator
	parser       ports.ReferenceParser
	walker       ports.SourceWalker
	shell        ports.Shell
	sink         ports.ScriptSink
	renderer     ports.ImageRenderer
	archiver     ports.Archiver
	watcher      ports.Watcher
	logger       ports.Logger

	stdout  io.Writer
	self    string
	workDir string
	window  time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	metadata ports.MetadataReader,
	locator ports.RasterizerLocator,
	parser ports.ReferenceParser,
	walker ports.SourceWalker,
	shell ports.Shell,
	sink ports.ScriptSink,
	renderer ports.ImageRenderer,
	archiver ports.Archiver,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		metadata:     metadata,
		locator:      locator,
		parser:       parser,
		walker:       walker,
		shell:        shell,
		sink:         sink,
		renderer:     renderer,
		archiver:     archiver,
		watcher:      watcher,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithStdout sets the writer receiving the script when the output is "-".
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithSelf sets the program path written into packaging and builtin rasterizer commands.
func (a *App) WithSelf(path string) *App {
	a.self = path
	return a
}

// WithWorkDir sets the directory project file discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// GenerateOptions holds command line overrides. Empty strings keep the configured value.
type GenerateOptions struct {
	Output          string
	Rasterizer      string
	RasterizerPath  string
	SourceDir       string
	BuildDir        string
	ListRasterizers bool
}

// Generate reads the metadata, selects a rasterizer and writes the complete build script.
// The script is rendered in memory first, so a failed run never leaves a partial file.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	if opts.ListRasterizers {
		return a.ListRasterizers(ctx, a.stdout)
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	meta, err := a.metadata.Read(
		filepath.Join(cfg.SourceDir, cfg.Metadata.File),
		cfg.Metadata.Section,
		cfg.Metadata.Key,
	)
	if err != nil {
		return err
	}
	a.logger.Info("Skin version: " + meta.Version)

	rasterizer, err := a.selectRasterizer(cfg)
	if err != nil {
		return err
	}

	self, err := a.selfPath()
	if err != nil {
		return err
	}

	content, err := a.render(ctx, cfg, meta, rasterizer, self)
	if err != nil {
		return err
	}

	return a.writeScript(cfg.Output, content)
}

func (a *App) loadConfig(opts GenerateOptions) (*domain.Config, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		cwd = wd
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Output, opts.Output)
	override(&cfg.Rasterizer, opts.Rasterizer)
	override(&cfg.RasterizerPath, opts.RasterizerPath)
	override(&cfg.SourceDir, opts.SourceDir)
	override(&cfg.BuildDir, opts.BuildDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// selectRasterizer resolves the configured backend. In auto mode the external
// backends are searched in priority order and the first one found wins.
func (a *App) selectRasterizer(cfg *domain.Config) (ports.Rasterizer, error) {
	if cfg.Rasterizer != domain.RasterizerAuto {
		r, err := a.findRasterizer(cfg.Rasterizer, cfg.RasterizerPath)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrNoRasterizer.Error())
		}
		a.logger.Info(fmt.Sprintf("Rasterizer: %s (%s)", r.Name(), r.Path()))
		return r, nil
	}

	if cfg.RasterizerPath != "" {
		a.logger.Warn("Ignoring rasterizer path " + cfg.RasterizerPath + " because no rasterizer was named")
	}

	for _, name := range a.locator.Names() {
		if name == domain.RasterizerBuiltin {
			continue
		}
		a.logger.Info("Searching for " + name + "...")
		r, err := a.locator.Find(name)
		if err != nil {
			continue
		}
		a.logger.Info(fmt.Sprintf("Rasterizer: %s (%s)", r.Name(), r.Path()))
		return r, nil
	}

	return nil, domain.ErrNoRasterizer
}

func (a *App) findRasterizer(name, path string) (ports.Rasterizer, error) {
	if path != "" {
		return a.locator.Open(name, path)
	}
	if name == domain.RasterizerBuiltin {
		if a.self != "" {
			return a.locator.Open(name, a.self)
		}
		return a.locator.Find(name)
	}
	a.logger.Info("Searching for " + name + "...")
	return a.locator.Find(name)
}

func (a *App) selfPath() (string, error) {
	if a.self != "" {
		return a.self, nil
	}
	self, err := os.Executable()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate svgmake executable")
	}
	return self, nil
}

func (a *App) render(
	ctx context.Context,
	cfg *domain.Config,
	meta domain.Metadata,
	rasterizer ports.Rasterizer,
	self string,
) ([]byte, error) {
	var buf bytes.Buffer
	w := makefile.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}

	emitter := generator.NewEmitter(w, collector.New(a.parser), rasterizer, a.shell, a.logger, cfg.BuildDir)
	gen := generator.New(a.walker, emitter, a.shell, a.logger, generator.Options{
		SourceDir:     cfg.SourceDir,
		BuildDir:      cfg.BuildDir,
		PrivatePrefix: cfg.PrivatePrefix,
		MetadataFile:  filepath.Join(cfg.SourceDir, cfg.Metadata.File),
		PreviewSource: filepath.Join(cfg.SourceDir, cfg.Preview.Source),
		PreviewOutput: cfg.Preview.Output,
		Archive:       meta.ArchiveName(cfg.Archive.Extension),
		Self:          self,
	})

	if err := gen.Generate(ctx); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) writeScript(output string, content []byte) error {
	if output == domain.StdoutOutput {
		if _, err := a.stdout.Write(content); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	}

	changed, err := a.sink.Write(output, content)
	if err != nil {
		return err
	}
	if changed {
		a.logger.Info("Wrote " + output)
	} else {
		a.logger.Info(output + " is up to date")
	}
	return nil
}

// ListRasterizers prints every backend with the executable it resolves to.
func (a *App) ListRasterizers(_ context.Context, w io.Writer) error {
	for _, name := range a.locator.Names() {
		status := "not found"
		if r, err := a.locator.Find(name); err == nil {
			status = r.Path()
		}
		if _, err := fmt.Fprintf(w, "%-12s %s\n", name, status); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
	}
	return nil
}

// Rasterize renders input to output with the built-in renderer.
func (a *App) Rasterize(_ context.Context, input, output string, scale int) error {
	return a.renderer.Render(input, output, scale)
}

// Pack writes files into the package archive.
func (a *App) Pack(_ context.Context, archive string, files []string) error {
	if err := a.archiver.Pack(archive, files); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Packed %d files into %s", len(files), archive))
	return nil
}
