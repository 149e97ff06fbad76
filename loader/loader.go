// Package loader locates configuration documents on the file system.
//
// FileLookup implements lintrc.Lookup: extension names are resolved to
// files under a list of search directories, parsed according to their
// extension and cached. Supported formats are native HCL (.hcl), JSON
// (.json) and YAML (.yaml, .yml).
//
// Example:
//
//	files, err := loader.New(&loader.Options{Dirs: []string{"."}})
//	if err != nil {
//	    return err
//	}
//	doc, err := loader.LoadFile(".eslintrc.json")
//	if err != nil {
//	    return err
//	}
//	resolver := lintrc.NewResolver(&lintrc.ResolverOptions{
//	    Lookup: lintrc.ChainLookup{lintrc.Builtins(), files},
//	})
//	cfg, err := resolver.Resolve(doc)
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jokarl/lintrc/lintrc"
)

const defaultCacheSize = 128

// Extensions tried, in order, for a name without a recognized extension.
var Extensions = []string{".hcl", ".json", ".yaml", ".yml"}

// Options configures a FileLookup.
type Options struct {
	// Dirs are the search directories, tried in order. Defaults to the
	// current directory.
	Dirs []string
	// CacheSize bounds the number of parsed documents kept. Defaults to 128.
	CacheSize int
	// Logger receives debug output. Defaults to a null logger.
	Logger hclog.Logger
}

// FileLookup resolves extension names to documents on disk.
type FileLookup struct {
	dirs   []string
	cache  *lru.Cache[string, *lintrc.Document]
	logger hclog.Logger
}

// Ensure FileLookup implements lintrc.Lookup.
var _ lintrc.Lookup = (*FileLookup)(nil)

// New returns a FileLookup. opts may be nil.
func New(opts *Options) (*FileLookup, error) {
	if opts == nil {
		opts = &Options{}
	}
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, *lintrc.Document](size)
	if err != nil {
		return nil, fmt.Errorf("create document cache: %w", err)
	}

	l := &FileLookup{
		dirs:   opts.Dirs,
		cache:  cache,
		logger: opts.Logger,
	}
	if len(l.dirs) == 0 {
		l.dirs = []string{"."}
	}
	if l.logger == nil {
		l.logger = hclog.NewNullLogger()
	}
	return l, nil
}

// LookupDocument implements lintrc.Lookup.
// Preset names ("eslint:...", "plugin:...") are never found on disk.
func (l *FileLookup) LookupDocument(name string) (*lintrc.Document, error) {
	if isPresetName(name) {
		return nil, fmt.Errorf("%w: %q is not a file name", lintrc.ErrDocumentNotFound, name)
	}

	for _, candidate := range Candidates(name) {
		for _, path := range l.paths(candidate) {
			if doc, ok := l.cache.Get(path); ok {
				l.logger.Trace("document cache hit", "name", name, "path", path)
				return named(doc, name), nil
			}
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			l.logger.Debug("loading document", "name", name, "path", path)
			doc, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			l.cache.Add(path, doc)
			return named(doc, name), nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", lintrc.ErrDocumentNotFound, name, strings.Join(l.dirs, ", "))
}

// named returns a shallow copy of doc carrying the name it was looked up
// by. Cached documents keep their path as name.
func named(doc *lintrc.Document, name string) *lintrc.Document {
	out := *doc
	out.Name = name
	return &out
}

// paths returns the file paths to try for a candidate name.
func (l *FileLookup) paths(candidate string) []string {
	var bases []string
	if filepath.IsAbs(candidate) {
		bases = []string{filepath.Clean(candidate)}
	} else {
		for _, dir := range l.dirs {
			bases = append(bases, filepath.Join(dir, filepath.FromSlash(candidate)))
		}
	}

	var paths []string
	for _, base := range bases {
		if formatOf(base) != "" {
			paths = append(paths, base)
			continue
		}
		for _, ext := range Extensions {
			paths = append(paths, base+ext)
		}
	}
	return paths
}

// Candidates returns the names tried for an extension name, following
// the shareable-config naming convention:
//
//	"./base"          -> "./base"
//	"airbnb"          -> "airbnb", "eslint-config-airbnb"
//	"@acme"           -> "@acme", "@acme/eslint-config"
//	"@acme/strict"    -> "@acme/strict", "@acme/eslint-config-strict"
func Candidates(name string) []string {
	candidates := []string{name}
	if isRelative(name) || filepath.IsAbs(name) {
		return candidates
	}

	if strings.HasPrefix(name, "@") {
		scope, rest, hasRest := strings.Cut(name, "/")
		switch {
		case !hasRest:
			candidates = append(candidates, scope+"/eslint-config")
		case !strings.HasPrefix(rest, "eslint-config"):
			candidates = append(candidates, scope+"/eslint-config-"+rest)
		}
		return candidates
	}

	if !strings.HasPrefix(name, "eslint-config-") {
		candidates = append(candidates, "eslint-config-"+name)
	}
	return candidates
}

// LoadFile reads and parses the document at path. The document is named
// after path; per-entry problems are kept in its Diagnostics.
func LoadFile(path string) (*lintrc.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", lintrc.ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	format := formatOf(path)
	if format == "" {
		return nil, fmt.Errorf("load %s: unsupported file extension", path)
	}
	return Parse(src, path, path, format)
}

func isPresetName(name string) bool {
	return strings.HasPrefix(name, "eslint:") || strings.HasPrefix(name, "plugin:")
}

func isRelative(name string) bool {
	return name == "." || name == ".." ||
		strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../")
}
