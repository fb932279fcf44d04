// Package host defines the asset-database operations the importer needs
// from the engine that owns the project.
//
// Registration is not visible until Refresh returns: an asset passed to
// Register cannot be loaded before the next Refresh.
package host

//go:generate mockgen -destination=mocks/mock_host.go -package=mocks . Host,Material

import (
	"context"
	"errors"
)

// ErrWrongType indicates an asset exists at a path with a different type
// than the operation needs.
var ErrWrongType = errors.New("asset has a different type")

// AssetType is the runtime type of an asset or sub-asset.
type AssetType string

const (
	TypeFolder          AssetType = "Folder"
	TypeGeometry        AssetType = "Geometry"
	TypeMesh            AssetType = "Mesh"
	TypeMaterialLibrary AssetType = "MaterialLibrary"
	TypeMaterial        AssetType = "Material"
	TypeTexture         AssetType = "Texture"
	TypeUnknown         AssetType = "Unknown"
)

// TextureKind is the import type of a texture.
type TextureKind string

const (
	TextureDefault   TextureKind = "default"
	TextureNormalMap TextureKind = "normal"
)

// ImportOptions controls Register and Refresh.
type ImportOptions struct {
	// ForceUpdate re-imports an asset even if it is already registered
	// and unchanged.
	ForceUpdate bool

	// ForceSynchronous waits for every queued import to finish.
	ForceSynchronous bool
}

// Color is a linear RGBA color.
type Color struct {
	R, G, B, A float64
}

// Red is opaque red.
var Red = Color{R: 1, A: 1}

// Handle is a loaded asset or sub-asset.
type Handle interface {
	Name() string
	Type() AssetType
	// Path is the virtual path of the file the asset lives in.
	Path() string
}

// Material is a loaded material asset whose properties can be changed.
// Changes are persisted by Host.SaveAll.
type Material interface {
	Handle
	SetTexture(slot string, texture Handle)
	SetFloat(name string, v float64)
	SetInt(name string, v int)
	SetColor(name string, c Color)
	EnableKeyword(keyword string)
}

// SubAsset is one entry embedded in an asset file.
type SubAsset struct {
	Name   string
	Type   AssetType
	Handle Handle
}

// Host is the engine asset database. Paths are virtual, slash-separated,
// and rooted at "Assets".
type Host interface {
	// PickFile asks the user for a file. An empty path means nothing
	// was chosen.
	PickFile(ctx context.Context, title string, extensions ...string) (string, error)

	// Register imports a file already present at a managed path.
	Register(ctx context.Context, path string, opts ImportOptions) error

	CreateFolder(ctx context.Context, parent, name string) error

	// Refresh completes all pending registrations.
	Refresh(ctx context.Context, opts ImportOptions) error

	// LoadAsset returns the registered asset at path with the given type.
	// It returns a nil Handle and no error when no imported asset of that
	// type exists at path.
	LoadAsset(ctx context.Context, path string, t AssetType) (Handle, error)

	LoadAllSubAssets(ctx context.Context, path string) ([]SubAsset, error)

	// ExtractSubAsset moves an embedded sub-asset into its own file.
	ExtractSubAsset(ctx context.Context, h Handle, dest string) error

	// UniquePath returns candidate, or a numbered variant of it that is
	// not in use.
	UniquePath(ctx context.Context, candidate string) (string, error)

	// SetTextureImportType fails with ErrWrongType when path is not a
	// texture.
	SetTextureImportType(ctx context.Context, path string, kind TextureKind) error

	// WriteImportSettingsIfDirty flushes pending import-setting changes
	// for the asset at path.
	WriteImportSettingsIfDirty(ctx context.Context, path string) error

	// SaveAll persists every modified asset.
	SaveAll(ctx context.Context) error
}
