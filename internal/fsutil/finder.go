// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a sorted slice of their full paths.
func FindFilesByExtension(fs afero.Fs, rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := afero.Walk(fs, rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResolveFiles returns path itself when it is a file, or every file below it
// ending in extension when it is a directory.
func ResolveFiles(fs afero.Fs, path string, extension string) ([]string, error) {
	info, err := fs.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{filepath.Clean(path)}, nil
	}
	return FindFilesByExtension(fs, path, extension)
}
