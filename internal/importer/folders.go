package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/vmunix/substance/pkg/assetpath"
)

const (
	materialsFolderName = "Materials"
	texturesFolderName  = "Textures"
)

// EnsureFolders makes sure the models folder, the model folder, and its
// Materials and Textures folders exist, creating missing ones top-down
// through the host. It returns the virtual paths it created. Calling it
// again for the same model creates nothing.
func (i *Importer) EnsureFolders(ctx context.Context, modelName string) ([]string, error) {
	models := i.cfg.ModelsPath
	model := assetpath.Join(models, modelName)

	levels := []struct{ parent, name string }{
		{path.Dir(models), path.Base(models)},
		{models, modelName},
		{model, materialsFolderName},
		{model, texturesFolderName},
	}

	var created []string
	for _, l := range levels {
		virtual := assetpath.Join(l.parent, l.name)
		exists, err := i.folderExists(virtual)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		if err := i.host.CreateFolder(ctx, l.parent, l.name); err != nil {
			return created, fmt.Errorf("create folder %s: %w", virtual, err)
		}
		i.log.Debug("folder created", "path", virtual)
		created = append(created, virtual)
	}
	return created, nil
}

func (i *Importer) folderExists(virtual string) (bool, error) {
	abs, err := i.absPath(virtual)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", virtual, err)
	}
	return info.IsDir(), nil
}
