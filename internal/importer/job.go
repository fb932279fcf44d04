package importer

import (
	"github.com/vmunix/substance/pkg/assetpath"
)

// ModelImportJob describes one import run. It lives for the duration of
// Importer.Import and is never persisted.
type ModelImportJob struct {
	// SourceGeometryPath is the chosen geometry file.
	SourceGeometryPath string

	// SourceMaterialDefPath is the sibling file sharing the geometry stem
	// with the material definition extension.
	SourceMaterialDefPath string

	// ModelName is the geometry file stem. It names the managed folder.
	ModelName string

	// SourceDirectory is where the geometry file lives, with a trailing
	// separator. Textures are searched for below it.
	SourceDirectory string

	// ModelFolder is the managed virtual folder, e.g. "Assets/Models/Chair".
	ModelFolder string
}

// NewModelImportJob derives a job from the chosen geometry file.
func NewModelImportJob(geometryPath, materialDefExt, modelsPath string) (*ModelImportJob, error) {
	name := assetpath.Stem(geometryPath)
	if name == "" {
		return nil, ErrNoModelName
	}
	dir := assetpath.ContainingDir(geometryPath)
	if dir == "" {
		dir = "./"
	}

	return &ModelImportJob{
		SourceGeometryPath:    geometryPath,
		SourceMaterialDefPath: dir + name + "." + materialDefExt,
		ModelName:             name,
		SourceDirectory:       dir,
		ModelFolder:           assetpath.Join(modelsPath, name),
	}, nil
}

// MaterialsFolder is the managed folder extracted materials are written to.
func (j *ModelImportJob) MaterialsFolder() string {
	return assetpath.Join(j.ModelFolder, materialsFolderName)
}

// TexturesFolder is the managed folder textures are copied to.
func (j *ModelImportJob) TexturesFolder() string {
	return assetpath.Join(j.ModelFolder, texturesFolderName)
}

// AssetPath is the managed path of a copied source file with extension ext.
func (j *ModelImportJob) AssetPath(ext string) string {
	return assetpath.Join(j.ModelFolder, j.ModelName+"."+ext)
}
