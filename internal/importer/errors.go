// internal/importer/errors.go
package importer

import "errors"

var (
	// ErrNoSelection indicates the file picker returned without a file.
	ErrNoSelection = errors.New("no geometry file selected")

	// ErrMissingSibling indicates the material definition file next to the
	// geometry file does not exist.
	ErrMissingSibling = errors.New("material definition file not found")

	// ErrNoModelName indicates the geometry file name has an empty stem.
	ErrNoModelName = errors.New("geometry file has no name")

	// ErrCopyFailed indicates a file copy into the project failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrPathTraversal indicates a managed path would escape the models folder.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrNotMaterial indicates an asset in the Materials folder cannot be edited
	// as a material.
	ErrNotMaterial = errors.New("asset is not an editable material")
)
