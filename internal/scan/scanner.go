// Package scan walks directory trees for candidate images.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the raster formats the pipeline can decode.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// IsSupportedImage reports whether path has a supported image extension.
// Extensions are matched case-insensitively.
func IsSupportedImage(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ListImages walks folder recursively and returns the paths of all supported
// images in lexical traversal order. Unreadable entries are skipped rather
// than aborting the walk.
func ListImages(folder string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if IsSupportedImage(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk folder: %w", err)
	}
	return paths, nil
}
