// internal/importer/sanitize.go
package importer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars are characters not allowed in asset file names.
var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeAssetName makes an embedded sub-asset name usable as a file name.
// Unsafe characters become underscores. Leading and trailing dots and
// spaces are dropped so the name cannot address a parent folder.
func SanitizeAssetName(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")
	if name == "" {
		return "Material"
	}
	return name
}

// ValidatePath ensures path is within root.
// Returns ErrPathTraversal if the path would escape it.
func ValidatePath(path, root string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(root)

	rel, err := filepath.Rel(cleanRoot, cleanPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrPathTraversal
	}
	return nil
}
