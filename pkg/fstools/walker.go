package fstools

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/sourcegraph/conc/pool"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
	"github.com/computerscienceiscool/scriptkit/pkg/sandbox"
)

// resolveRoot maps an empty root to the current working directory.
func resolveRoot(rootDir string) (string, error) {
	if rootDir == "" {
		return os.Getwd()
	}
	return filepath.Clean(rootDir), nil
}

// ListProjectFiles returns every non-directory entry below rootDir, depth
// first in directory-listing order. Service names are skipped at every depth.
// An empty rootDir means the current working directory.
func ListProjectFiles(rootDir string) ([]string, error) {
	root, err := resolveRoot(rootDir)
	if err != nil {
		return nil, err
	}

	results := []string{}
	var walk func(current string) error
	walk = func(current string) error {
		entries, err := os.ReadDir(current)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if sandbox.IsServiceName(entry.Name()) {
				continue
			}
			full := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}
			results = append(results, full)
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}
	return results, nil
}

// ListProjectFilesAsync walks sibling directories concurrently. It yields the
// same set of paths as ListProjectFiles; the order is unspecified.
func ListProjectFilesAsync(ctx context.Context, rootDir string) *Task[[]string] {
	return start(ctx, func() ([]string, error) {
		root, err := resolveRoot(rootDir)
		if err != nil {
			return nil, err
		}

		var mu sync.Mutex
		results := []string{}
		conf := fastwalk.Config{Follow: false}

		err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}
			if sandbox.IsServiceName(d.Name()) {
				if d.IsDir() {
					return fastwalk.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			mu.Lock()
			results = append(results, filepath.Clean(path))
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, err
		}
		return results, nil
	})
}

// PurgeProject removes every top-level entry of rootDir that is not a service
// name. Only the top level is filtered: everything below a removed entry goes
// with it, service names included.
func PurgeProject(rootDir string) error {
	root, err := resolveRoot(rootDir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if sandbox.IsServiceName(entry.Name()) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// PurgeProjectAsync removes the same entries as PurgeProject, all at once.
// A failing removal does not stop the others; after every removal has
// settled the failures are reported together as an *errors.AggregateError.
func PurgeProjectAsync(ctx context.Context, rootDir string) *Task[struct{}] {
	return start(ctx, void(func() error {
		root, err := resolveRoot(rootDir)
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			return err
		}

		p := pool.New().WithErrors()
		for _, entry := range entries {
			if sandbox.IsServiceName(entry.Name()) {
				continue
			}
			full := filepath.Join(root, entry.Name())
			p.Go(func() error {
				if err := os.RemoveAll(full); err != nil {
					return &errors.EntryError{Path: full, Err: err}
				}
				return nil
			})
		}
		return errors.NewAggregate("purge "+root, p.Wait())
	}))
}

// MatchFiles keeps the paths whose location relative to rootDir matches the
// doublestar pattern (for example "**/*.txt"). An empty pattern keeps all.
func MatchFiles(rootDir string, paths []string, pattern string) ([]string, error) {
	if pattern == "" {
		return paths, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, &errors.ValidationError{Field: "pattern", Value: pattern, Err: errors.ErrInvalidArgument}
	}

	root, err := resolveRoot(rootDir)
	if err != nil {
		return nil, err
	}

	matched := []string{}
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			continue
		}
		if doublestar.MatchUnvalidated(pattern, filepath.ToSlash(rel)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
