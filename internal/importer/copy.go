// internal/importer/copy.go
package importer

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src over dst and returns the number of bytes written.
// The destination folder must already exist. An existing dst is replaced.
func CopyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	size, err := io.Copy(dstFile, srcFile)
	if err != nil {
		// Clean up partial file on error
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}

	return size, nil
}

// writeFile writes data over dst. The destination folder must already exist.
func writeFile(dst string, data []byte) error {
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	return nil
}
