package assetdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// metaFile is the import-settings sidecar written next to every asset.
type metaFile struct {
	GUID        string      `toml:"guid"`
	Type        string      `toml:"type"`
	TextureKind string      `toml:"texture_kind,omitempty"`
	Remaps      []metaRemap `toml:"remap,omitempty"`
}

type metaRemap struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Target string `toml:"target"`
}

func metaPath(absPath string) string {
	return absPath + ".meta"
}

// readMetaGUID returns the GUID stored in the sidecar, or "" if there is none.
func readMetaGUID(absPath string) (string, error) {
	var m metaFile
	if _, err := toml.DecodeFile(metaPath(absPath), &m); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read meta: %w", err)
	}
	return m.GUID, nil
}

func writeMeta(absPath string, m metaFile) error {
	f, err := os.Create(metaPath(absPath))
	if err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encode meta: %w", err)
	}
	return nil
}
