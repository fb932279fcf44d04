package importer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/pkg/assetpath"
	"github.com/vmunix/substance/pkg/texmatch"
)

// ResolveTexture looks below sourceDir for a file whose stem ends with
// "<materialName>_<role>". The first match in walk order is copied into the
// model's Textures folder and force re-imported, and its virtual path is
// returned. ok is false when nothing matches; that is not an error.
func (i *Importer) ResolveTexture(ctx context.Context, modelName, sourceDir, materialName string, role texmatch.Role) (string, bool, error) {
	src, stems, err := FindTexture(sourceDir, materialName, role)
	if err != nil {
		return "", false, err
	}
	if src == "" {
		if s, ok := texmatch.Suggest(materialName, role, stems); ok {
			i.log.Debug("texture not found, near miss",
				"material", materialName, "role", role, "want", texmatch.Suffix(materialName, role),
				"closest", s.Stem, "score", s.Score)
		}
		return "", false, nil
	}

	slashed := filepath.ToSlash(src)
	name := assetpath.Stem(slashed) + "." + assetpath.Extension(slashed)
	dest := assetpath.Join(i.cfg.ModelsPath, modelName, texturesFolderName, name)

	abs, err := i.absPath(dest)
	if err != nil {
		return "", false, err
	}
	size, err := CopyFile(src, abs)
	if err != nil {
		return "", false, err
	}
	i.log.Debug("texture copied", "src", src, "dest", dest, "size_bytes", size)

	if err := i.host.Register(ctx, dest, host.ImportOptions{ForceUpdate: true}); err != nil {
		return "", false, fmt.Errorf("register %s: %w", dest, err)
	}
	if err := i.host.Refresh(ctx, host.ImportOptions{}); err != nil {
		return "", false, fmt.Errorf("refresh: %w", err)
	}
	return dest, true, nil
}

// FindTexture walks dir for the first file matching materialName and role.
// Files without an extension are never textures. When nothing matches, the
// stems that were seen are returned for diagnostics.
func FindTexture(dir, materialName string, role texmatch.Role) (string, []string, error) {
	var found string
	var stems []string

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		slashed := filepath.ToSlash(p)
		stem := assetpath.Stem(slashed)
		if !texmatch.Matches(stem, materialName, role) || assetpath.Extension(slashed) == "" {
			stems = append(stems, stem)
			return nil
		}
		found = p
		return fs.SkipAll
	})
	if err != nil {
		return "", nil, fmt.Errorf("scan textures in %s: %w", dir, err)
	}
	return found, stems, nil
}
