// Package generator walks the source tree and emits the build rules of the generated script.
package generator

import (
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
)

// DependencyCollector returns the transitive dependencies of a vector source.
type DependencyCollector interface {
	Collect(path string) ([]string, error)
}

// Emitter turns conversion, copy and delete requests into rules.
type Emitter struct {
	writer     ports.RuleWriter
	collector  DependencyCollector
	rasterizer ports.Rasterizer
	shell      ports.Shell
	logger     ports.Logger
	buildDir   string
}

// NewEmitter creates an Emitter writing rules to writer.
func NewEmitter(
	writer ports.RuleWriter,
	collector DependencyCollector,
	rasterizer ports.Rasterizer,
	shell ports.Shell,
	logger ports.Logger,
	buildDir string,
) *Emitter {
	return &Emitter{
		writer:     writer,
		collector:  collector,
		rasterizer: rasterizer,
		shell:      shell,
		logger:     logger,
		buildDir:   buildDir,
	}
}

// EmitRule writes rule. Repeated prerequisites are written once, first occurrence first.
// Target uniqueness is not checked.
func (e *Emitter) EmitRule(rule domain.Rule) error {
	e.logger.Info("Writing target: " + rule.Target)
	rule.Prerequisites = dedupe(rule.Prerequisites)
	return e.writer.WriteRule(rule)
}

// EmitConversionRule emits the rule rasterizing input and returns the primary output path.
// An empty output selects <buildDir>/<base>.png. With doubleScale the rule also renders
// the @2x sibling at scale 2.
func (e *Emitter) EmitConversionRule(input, output string, doubleScale bool) (string, error) {
	if output == "" {
		output = domain.DefaultOutputPath(e.buildDir, input)
	}

	deps, err := e.collector.Collect(input)
	if err != nil {
		return "", err
	}

	prerequisites := make([]string, 0, len(deps)+1)
	prerequisites = append(prerequisites, input)
	prerequisites = append(prerequisites, deps...)

	commands := []string{e.rasterizer.Command(input, output, 1)}
	if doubleScale {
		commands = append(commands, e.rasterizer.Command(input, domain.DoubleScalePath(output), 2))
	}

	err = e.EmitRule(domain.Rule{
		Target:        output,
		Prerequisites: prerequisites,
		Commands:      commands,
	})
	if err != nil {
		return "", err
	}
	return output, nil
}

// EmitCopyRule emits a rule producing to by copying from.
func (e *Emitter) EmitCopyRule(from, to string) error {
	return e.EmitRule(domain.Rule{
		Target:        to,
		Prerequisites: []string{from},
		Commands:      []string{e.shell.Copy(from, to)},
	})
}

// EmitDeleteRule emits a phony rule removing every path.
func (e *Emitter) EmitDeleteRule(target string, paths ...string) error {
	commands := make([]string, 0, len(paths))
	for _, path := range paths {
		commands = append(commands, e.shell.Delete(path))
	}
	return e.EmitRule(domain.Rule{
		Target:   target,
		Phony:    true,
		Commands: commands,
	})
}

func dedupe(items []string) []string {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
