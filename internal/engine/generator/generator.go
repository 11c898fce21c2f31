package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options locates the inputs and outputs of one generation run. MetadataFile
// is copied into BuildDir. Archive is the versioned package file and Self is
// the program invoked by the packaging command.
type Options struct {
	SourceDir     string
	BuildDir      string
	PrivatePrefix string
	MetadataFile  string
	PreviewSource string
	PreviewOutput string
	Archive       string
	Self          string
}

// Generator walks the source tree and emits every rule of the script.
type Generator struct {
	walker  ports.SourceWalker
	emitter *Emitter
	shell   ports.Shell
	logger  ports.Logger
	opts    Options
}

// New creates a Generator.
func New(walker ports.SourceWalker, emitter *Emitter, shell ports.Shell, logger ports.Logger, opts Options) *Generator {
	return &Generator{
		walker:  walker,
		emitter: emitter,
		shell:   shell,
		logger:  logger,
		opts:    opts,
	}
}

// Generate emits one conversion rule per public vector source followed by the
// metadata copy, all, clean, preview, archive, package and release rules.
func (g *Generator) Generate(ctx context.Context) error {
	outputs, err := g.emitSources(ctx)
	if err != nil {
		return err
	}

	metadataCopy := filepath.Join(g.opts.BuildDir, filepath.Base(g.opts.MetadataFile))
	if err := g.emitter.EmitCopyRule(g.opts.MetadataFile, metadataCopy); err != nil {
		return err
	}
	aggregate := append(slices.Clone(outputs), metadataCopy)

	if err := g.emitter.EmitRule(domain.Rule{
		Target:        domain.TargetAll,
		Prerequisites: aggregate,
		Phony:         true,
	}); err != nil {
		return err
	}

	if err := g.emitter.EmitDeleteRule(domain.TargetClean, g.cleanPaths(outputs, metadataCopy)...); err != nil {
		return err
	}

	hasPreview, err := g.emitPreview()
	if err != nil {
		return err
	}

	if err := g.emitter.EmitRule(domain.Rule{
		Target:        g.opts.Archive,
		Prerequisites: []string{domain.TargetAll},
		Commands:      []string{g.packCommand(outputs, metadataCopy)},
	}); err != nil {
		return err
	}

	if err := g.emitter.EmitRule(domain.Rule{
		Target:        domain.TargetPackage,
		Prerequisites: []string{g.opts.Archive},
		Phony:         true,
	}); err != nil {
		return err
	}

	release := []string{domain.TargetPackage}
	if hasPreview {
		release = append(release, g.opts.PreviewOutput)
	}
	return g.emitter.EmitRule(domain.Rule{
		Target:        domain.TargetRelease,
		Prerequisites: release,
		Phony:         true,
	})
}

// emitSources emits a double-scale conversion rule for every public vector
// source and returns the distinct primary outputs in walk order.
func (g *Generator) emitSources(ctx context.Context) ([]string, error) {
	outputs := []string{}
	sources := make(map[string]string)

	for path, err := range g.walker.WalkFiles(g.opts.SourceDir, g.opts.PrivatePrefix) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !domain.IsVectorSource(path) {
			continue
		}

		output, err := g.emitter.EmitConversionRule(path, "", true)
		if err != nil {
			return nil, err
		}

		if previous, dup := sources[output]; dup {
			g.logger.Warn("Duplicate output " + output + " from " + previous + " and " + path)
			continue
		}
		sources[output] = path
		outputs = append(outputs, output)
	}

	return outputs, nil
}

func (g *Generator) cleanPaths(outputs []string, metadataCopy string) []string {
	paths := make([]string, 0, 2*len(outputs)+3)
	for _, output := range outputs {
		paths = append(paths, output, domain.DoubleScalePath(output))
	}
	return append(paths, metadataCopy, g.opts.PreviewOutput, g.opts.Archive)
}

// emitPreview emits the single-scale preview rule. A missing preview source is
// reported as a warning and leaves the preview out of the script.
func (g *Generator) emitPreview() (bool, error) {
	if _, err := os.Stat(g.opts.PreviewSource); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Warn("Preview source " + g.opts.PreviewSource + " not found, skipping preview")
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", g.opts.PreviewSource)
	}

	if _, err := g.emitter.EmitConversionRule(g.opts.PreviewSource, g.opts.PreviewOutput, false); err != nil {
		return false, err
	}
	return true, nil
}

// packCommand invokes the pack subcommand with every output, its @2x sibling and the metadata copy.
func (g *Generator) packCommand(outputs []string, metadataCopy string) string {
	q := g.shell.Quote
	cmd := q(g.opts.Self) + " pack " + q(g.opts.Archive)
	for _, output := range outputs {
		cmd += " " + q(output) + " " + q(domain.DoubleScalePath(output))
	}
	return cmd + " " + q(metadataCopy)
}
