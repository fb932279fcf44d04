package assetdb

import (
	"errors"

	"github.com/vmunix/substance/internal/host"
)

var (
	// ErrNotFound indicates no ready asset exists at the path.
	ErrNotFound = errors.New("asset not found")

	// ErrWrongType indicates the asset exists with a different type.
	ErrWrongType = host.ErrWrongType

	// ErrOutsideProject indicates a virtual path that does not resolve
	// under the project's Assets folder.
	ErrOutsideProject = errors.New("path outside project assets")

	// ErrParentMissing indicates a folder was requested under a parent
	// that does not exist.
	ErrParentMissing = errors.New("parent folder does not exist")

	// ErrExtractFailed indicates a sub-asset could not be extracted.
	ErrExtractFailed = errors.New("extract sub-asset failed")

	// ErrNoPicker indicates PickFile was called without a picker.
	ErrNoPicker = errors.New("no file picker configured")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
)
