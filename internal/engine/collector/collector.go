// Package collector resolves the transitive embedded-image dependencies of vector sources.
package collector

import (
	"errors"
	"io/fs"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// schemeRegex matches a URL scheme of at least two characters, so Windows
// drive letters are not mistaken for one.
var schemeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]+:`)

// Collector computes dependency lists with a per-instance memo and call-stack cycle detection.
// A Collector is not safe for concurrent use.
type Collector struct {
	parser ports.ReferenceParser
	cache  *domain.DependencyCache
	stack  []string
}

// New creates a Collector with an empty cache.
func New(parser ports.ReferenceParser) *Collector {
	return &Collector{
		parser: parser,
		cache:  domain.NewDependencyCache(),
	}
}

// Collect returns every file referenced by the vector source at path, followed
// by the dependencies of each referenced vector source, in discovery order.
// The file itself is never part of its own list. Repeated calls for the same
// path return the cached slice without parsing again.
func (c *Collector) Collect(path string) ([]string, error) {
	return c.collect(filepath.Clean(path), true)
}

func (c *Collector) collect(path string, root bool) ([]string, error) {
	if deps, ok := c.cache.Lookup(path); ok {
		return deps, nil
	}

	if slices.Contains(c.stack, path) {
		return nil, c.buildCycleError(path)
	}

	c.stack = append(c.stack, path)
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
	}()

	refs, err := c.parser.ParseReferences(path)
	if err != nil {
		// A missing embedded vector source is a dangling prerequisite for make to report.
		if !root && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	deps := []string{}
	for _, ref := range refs {
		dep, ok := resolve(path, ref)
		if !ok {
			continue
		}
		deps = append(deps, dep)

		if !domain.IsVectorSource(dep) {
			continue
		}
		nested, err := c.collect(dep, false)
		if err != nil {
			return nil, err
		}
		deps = append(deps, nested...)
	}

	return c.cache.Store(path, deps), nil
}

// buildCycleError constructs an error with cycle path metadata.
func (c *Collector) buildCycleError(path string) error {
	start := slices.Index(c.stack, path)
	cycle := slices.Clone(c.stack[start:])
	cycle = append(cycle, path)
	return zerr.With(domain.ErrReferenceCycle, "cycle", strings.Join(cycle, " -> "))
}

// resolve turns a link attribute into a file path relative to the referencing file.
// Fragment-only links, data URIs and remote URLs are not file dependencies.
func resolve(parent, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return "", false
	}

	if schemeRegex.MatchString(ref) {
		u, err := url.Parse(ref)
		if err != nil || !strings.EqualFold(u.Scheme, "file") || u.Path == "" {
			return "", false
		}
		return filepath.Clean(filepath.FromSlash(u.Path)), true
	}

	if i := strings.IndexAny(ref, "#?"); i >= 0 {
		ref = ref[:i]
		if ref == "" {
			return "", false
		}
	}

	p := filepath.FromSlash(ref)
	if filepath.IsAbs(p) {
		return filepath.Clean(p), true
	}
	return filepath.Join(filepath.Dir(parent), p), true
}
