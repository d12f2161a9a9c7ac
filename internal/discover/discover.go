package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"asset-packer/internal/config"
)

// ConfigurationError reports an asset root that cannot be scanned at all.
// It is fatal; nothing is written when it occurs.
type ConfigurationError struct {
	Root   string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not a valid directory: %s", e.Root, e.Reason)
}

// Unwrap returns the underlying filesystem error, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Discover returns the sorted paths of every supported file under
// cfg.AssetRoot. An empty result is not an error.
func Discover(cfg *config.Config) ([]string, error) {
	if err := checkRoot(cfg.AssetRoot); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	walkRoot := dirRoot(cfg.AssetRoot)

	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != walkRoot && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() || !cfg.Supports(d.Name()) {
			return nil
		}

		regular, err := isRegular(path, d)
		if err != nil {
			return err
		}

		if regular {
			seen[path] = struct{}{}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.AssetRoot, err)
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}

	slices.Sort(files)

	return files, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			reason = "does not exist"
		}

		return &ConfigurationError{Root: root, Reason: reason, Err: err}
	}

	if !info.IsDir() {
		return &ConfigurationError{Root: root, Reason: "not a directory"}
	}

	return nil
}

// dirRoot appends a trailing separator so WalkDir resolves a root that is
// a symlink to a directory instead of reporting the link itself.
func dirRoot(root string) string {
	root = filepath.Clean(root)
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}

	return root + string(filepath.Separator)
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	return info.Mode().IsRegular(), nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
