package rulemap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Supported reports whether filename has a rule map extension
// (.yaml, .yml or .json).
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Load reads and parses a single rule map file.
func Load(filename string) (validator.RuleMap, error) {
	if !Supported(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rules, nil
}

// LoadFS parses every rule map file directly inside dir and keys the result
// by form name, the file name without its extension. Subdirectories and
// files with other extensions are skipped.
func LoadFS(fsys fs.FS, dir string) (map[string]validator.RuleMap, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	forms := make(map[string]validator.RuleMap, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !Supported(entry.Name()) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if _, dup := forms[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateForm, name)
		}

		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}
		rules, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		forms[name] = rules
	}

	return forms, nil
}

// LoadDir is LoadFS over the operating system directory dir.
func LoadDir(dir string) (map[string]validator.RuleMap, error) {
	return LoadFS(os.DirFS(dir), ".")
}
