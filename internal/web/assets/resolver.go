// Package assets resolves untrusted request paths to files under a fixed
// asset root, preventing path traversal (CWE-22).
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDocument is served for empty or directory-like requests.
const DefaultDocument = "index.html"

var (
	// ErrForbidden indicates the resolved path escapes the asset root,
	// or the path could not be canonicalized.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the resolved path does not reference an
	// existing regular file inside the root.
	ErrNotFound = errors.New("not found")
)

// Resolver maps request paths to files under a single asset root.
// The root is canonicalized once at construction and never mutated,
// so a Resolver is safe for concurrent use.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at dir.
// dir must exist and be a directory; it is converted to its absolute,
// symlink-free form so that containment checks compare canonical paths.
func NewResolver(dir string) (*Resolver, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving asset root %q: %w", dir, err)
	}

	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing asset root %q: %w", abs, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %q is not a directory", root)
	}

	return &Resolver{root: root}, nil
}

// Root returns the canonical asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps an untrusted request path to the canonical absolute path of
// a regular file under the asset root.
//
// Empty or trailing-slash requests fall back to DefaultDocument. Traversal
// sequences and symlinks escaping the root yield ErrForbidden; paths that
// stay inside the root but do not name an existing regular file yield
// ErrNotFound. Each call is a pure function of the request and the current
// filesystem state; no path outside the root is ever returned.
func (r *Resolver) Resolve(requested string) (string, error) {
	name := requested
	if name == "" || strings.HasSuffix(name, "/") {
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			name = DefaultDocument
		} else {
			name += "/" + DefaultDocument
		}
	}

	// Join cleans "." and ".." lexically, so a traversal attempt surfaces
	// as an absolute path outside the root.
	candidate := filepath.Join(r.root, filepath.FromSlash(name))
	if !r.contains(candidate) {
		return "", ErrForbidden
	}

	// Canonicalize to catch symlinks pointing outside the root.
	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		// Symlink loops, permission errors and other OS-level failures
		// are treated as rejections, never as a content leak.
		return "", ErrForbidden
	}
	if !r.contains(resolved) {
		return "", ErrForbidden
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", ErrNotFound
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	return resolved, nil
}

// contains reports whether path lies within the asset root. The comparison
// is segment-aware (root itself, or root plus a separator) so a sibling
// directory sharing the root's string prefix is rejected.
func (r *Resolver) contains(path string) bool {
	if path == r.root {
		return true
	}
	return strings.HasPrefix(path, r.root+string(filepath.Separator))
}
