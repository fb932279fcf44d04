// Package assetdb is a project asset database: files under <project>/Assets
// are registered in a SQLite catalog, imported on Refresh, and exposed
// through the host.Host operations the importer uses.
package assetdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/pkg/assetpath"
)

// AssetsRoot is the first segment of every virtual path.
const AssetsRoot = "Assets"

// Picker asks the user to choose a file.
type Picker interface {
	Pick(ctx context.Context, title string, extensions []string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, title string, extensions []string) (string, error)

func (f PickerFunc) Pick(ctx context.Context, title string, extensions []string) (string, error) {
	return f(ctx, title, extensions)
}

// DB is a host.Host backed by a project directory and a catalog database.
type DB struct {
	root      string
	store     *Store
	picker    Picker
	log       *slog.Logger
	materials map[string]*Material
}

var _ host.Host = (*DB)(nil)

// New creates an asset database for the project at root. The catalog
// schema must already be applied to db. picker may be nil.
func New(root string, db *sql.DB, picker Picker, log *slog.Logger) *DB {
	if log == nil {
		log = slog.Default()
	}
	return &DB{
		root:      root,
		store:     NewStore(db),
		picker:    picker,
		log:       log,
		materials: make(map[string]*Material),
	}
}

// AbsPath maps a virtual path onto the project directory.
func (d *DB) AbsPath(virtual string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(virtual, `\`, "/"))
	if clean != AssetsRoot && !strings.HasPrefix(clean, AssetsRoot+"/") {
		return "", fmt.Errorf("%w: %s", ErrOutsideProject, virtual)
	}
	return filepath.Join(d.root, filepath.FromSlash(clean)), nil
}

// PickFile delegates to the configured picker.
func (d *DB) PickFile(ctx context.Context, title string, extensions ...string) (string, error) {
	if d.picker == nil {
		return "", ErrNoPicker
	}
	return d.picker.Pick(ctx, title, extensions)
}

// CreateFolder creates name under parent and registers it. An existing
// folder is left as is.
func (d *DB) CreateFolder(ctx context.Context, parent, name string) error {
	parentAbs, err := d.AbsPath(parent)
	if err != nil {
		return err
	}
	info, err := os.Stat(parentAbs)
	if err != nil || !info.IsDir() {
		// The Assets folder itself is created on demand.
		if path.Clean(parent) != AssetsRoot {
			return fmt.Errorf("%w: %s", ErrParentMissing, parent)
		}
	}

	virtual := assetpath.Join(path.Clean(parent), name)
	abs, err := d.AbsPath(virtual)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("create folder %s: %w", virtual, err)
	}

	rec, err := d.store.Get(virtual)
	if errors.Is(err, ErrNotFound) {
		rec = &Record{Path: virtual, Type: host.TypeFolder}
		if rec.GUID, err = d.guidFor(abs); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	rec.State = StateReady
	if err := d.store.Put(rec); err != nil {
		return err
	}
	d.log.Debug("folder created", "path", virtual, "guid", rec.GUID)
	return nil
}

// Register queues the file at virtual path for import on the next Refresh.
// Unchanged, already imported files are skipped unless opts.ForceUpdate is
// set or their import settings changed.
func (d *DB) Register(ctx context.Context, virtual string, opts host.ImportOptions) error {
	abs, err := d.AbsPath(virtual)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("register %s: %w", virtual, err)
	}

	rec, err := d.store.Get(virtual)
	isNew := errors.Is(err, ErrNotFound)
	if err != nil && !isNew {
		return err
	}
	if isNew {
		rec = &Record{Path: virtual, Type: typeForPath(virtual, info.IsDir())}
		if rec.GUID, err = d.guidFor(abs); err != nil {
			return err
		}
	}

	unchanged := !isNew && rec.State == StateReady &&
		rec.SizeBytes == info.Size() && rec.ModTime == info.ModTime().UnixNano()
	if unchanged && !opts.ForceUpdate && !rec.SettingsDirty {
		d.log.Debug("asset unchanged", "path", virtual)
		return nil
	}

	rec.SizeBytes = info.Size()
	rec.ModTime = info.ModTime().UnixNano()
	rec.State = StatePending
	if isNew || rec.SettingsDirty {
		if err := d.writeSettings(rec, abs); err != nil {
			return err
		}
		rec.SettingsDirty = false
	}
	if rec.Type == host.TypeFolder {
		rec.State = StateReady
	}
	if err := d.store.Put(rec); err != nil {
		return err
	}

	d.log.Debug("asset queued", "path", virtual, "type", rec.Type, "force", opts.ForceUpdate)
	return nil
}

// Refresh imports every pending asset. Imports always run to completion
// before Refresh returns, so ForceSynchronous changes nothing here.
func (d *DB) Refresh(ctx context.Context, opts host.ImportOptions) error {
	pending, err := d.store.Pending()
	if err != nil {
		return fmt.Errorf("list pending: %w", err)
	}

	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.importAsset(rec); err != nil {
			return fmt.Errorf("import %s: %w", rec.Path, err)
		}
	}

	if len(pending) > 0 {
		d.log.Debug("refresh complete", "imported", len(pending))
	}
	return nil
}

func (d *DB) importAsset(rec *Record) error {
	abs, err := d.AbsPath(rec.Path)
	if err != nil {
		return err
	}

	var subs []SubRecord
	switch rec.Type {
	case host.TypeGeometry:
		subs, err = d.importGeometry(rec, abs)
	case host.TypeMaterial:
		// A reload picks up the file as written on disk.
		delete(d.materials, rec.Path)
		_, err = loadMaterial(rec.Path, abs)
	}
	if err != nil {
		return err
	}

	tx, err := d.store.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ReplaceSubAssets(rec.ID, subs); err != nil {
		return err
	}
	rec.State = StateReady
	if err := tx.Put(rec); err != nil {
		return err
	}
	return tx.Commit()
}

// importGeometry builds the embedded mesh and material entries of an OBJ
// file. Materials that were already extracted are not embedded again.
func (d *DB) importGeometry(rec *Record, abs string) ([]SubRecord, error) {
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := parseOBJ(rec.Path, f)
	if err != nil {
		return nil, err
	}

	defined := make(map[string]*mtlMaterial)
	for _, lib := range info.MaterialLibs {
		libPath := filepath.Join(filepath.Dir(abs), filepath.FromSlash(lib))
		lf, err := os.Open(libPath)
		if err != nil {
			d.log.Warn("material library missing", "asset", rec.Path, "library", lib, "error", err)
			continue
		}
		mats, warnings, err := parseMTL(lib, lf)
		_ = lf.Close()
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			d.log.Warn("material library line skipped", "asset", rec.Path, "error", w)
		}
		for _, m := range mats {
			defined[m.Name] = m
		}
	}

	remaps, err := d.store.Remaps(rec.ID)
	if err != nil {
		return nil, err
	}
	extracted := make(map[string]bool, len(remaps))
	for _, m := range remaps {
		extracted[string(m.Type)+"/"+m.Name] = true
	}

	stem := assetpath.Stem(rec.Path)
	subs := []SubRecord{{
		Name:    stem,
		Type:    host.TypeMesh,
		Payload: fmt.Sprintf("vertices=%d faces=%d", info.Vertices, info.Faces),
	}}

	used := info.UsedMaterials
	if len(used) == 0 {
		used = []string{"DefaultMaterial"}
	}
	for _, name := range used {
		if extracted[string(host.TypeMaterial)+"/"+name] {
			continue
		}
		mf := newMaterialFile(name)
		if def, ok := defined[name]; ok {
			mf = materialFromMTL(def)
		}
		payload, err := encodeMaterial(mf)
		if err != nil {
			return nil, err
		}
		subs = append(subs, SubRecord{Name: name, Type: host.TypeMaterial, Payload: payload})
	}

	d.log.Debug("geometry imported", "path", rec.Path,
		"vertices", info.Vertices, "faces", info.Faces, "materials", len(subs)-1)
	return subs, nil
}

func (d *DB) readyRecord(virtual string) (*Record, error) {
	rec, err := d.store.Get(virtual)
	if err != nil {
		return nil, err
	}
	if rec.State != StateReady {
		return nil, fmt.Errorf("%w: %s is not imported yet", ErrNotFound, virtual)
	}
	return rec, nil
}

// LoadAsset returns the imported asset at virtual path. A path that is not
// imported, or holds an asset of another type, yields a nil handle.
func (d *DB) LoadAsset(ctx context.Context, virtual string, t host.AssetType) (host.Handle, error) {
	rec, err := d.readyRecord(virtual)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.Type != t {
		d.log.Debug("asset type mismatch", "path", virtual, "type", rec.Type, "want", t)
		return nil, nil
	}

	if t != host.TypeMaterial {
		return &asset{name: assetpath.Stem(virtual), typ: rec.Type, path: virtual}, nil
	}
	if m, ok := d.materials[virtual]; ok {
		return m, nil
	}
	abs, err := d.AbsPath(virtual)
	if err != nil {
		return nil, err
	}
	m, err := loadMaterial(virtual, abs)
	if err != nil {
		return nil, err
	}
	d.materials[virtual] = m
	return m, nil
}

// LoadAllSubAssets returns the main asset followed by its embedded entries.
func (d *DB) LoadAllSubAssets(ctx context.Context, virtual string) ([]host.SubAsset, error) {
	rec, err := d.readyRecord(virtual)
	if err != nil {
		return nil, err
	}
	subs, err := d.store.SubAssets(rec.ID)
	if err != nil {
		return nil, err
	}

	main := &asset{name: assetpath.Stem(virtual), typ: rec.Type, path: virtual}
	out := []host.SubAsset{{Name: main.name, Type: main.typ, Handle: main}}
	for _, s := range subs {
		h := &subAsset{asset: asset{name: s.Name, typ: s.Type, path: virtual}, sourceID: rec.ID, payload: s.Payload}
		out = append(out, host.SubAsset{Name: s.Name, Type: s.Type, Handle: h})
	}
	return out, nil
}

// ExtractSubAsset writes an embedded material to dest, registers it, and
// remaps the source asset to it. The source's import settings are left
// dirty until WriteImportSettingsIfDirty.
func (d *DB) ExtractSubAsset(ctx context.Context, h host.Handle, dest string) error {
	sa, ok := h.(*subAsset)
	if !ok {
		return fmt.Errorf("%w: %s is not an embedded asset", ErrExtractFailed, h.Name())
	}
	if sa.typ != host.TypeMaterial {
		return fmt.Errorf("%w: cannot extract %s of type %s", ErrExtractFailed, sa.name, sa.typ)
	}

	abs, err := d.AbsPath(dest)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrExtractFailed, dest)
	}
	if info, err := os.Stat(filepath.Dir(abs)); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: folder for %s does not exist", ErrExtractFailed, dest)
	}

	mf, err := decodeMaterial(sa.payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}
	m := &Material{path: dest, file: mf}
	if err := m.save(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	rec := &Record{
		Path:      dest,
		Type:      host.TypeMaterial,
		State:     StateReady,
		SizeBytes: info.Size(),
		ModTime:   info.ModTime().UnixNano(),
	}
	if rec.GUID, err = d.guidFor(abs); err != nil {
		return err
	}
	if err := d.writeSettings(rec, abs); err != nil {
		return err
	}
	if err := d.store.Put(rec); err != nil {
		return err
	}

	if err := d.store.AddRemap(Remap{AssetID: sa.sourceID, Name: sa.name, Type: sa.typ, TargetPath: dest}); err != nil {
		return err
	}
	source, err := d.store.Get(sa.path)
	if err != nil {
		return err
	}
	source.SettingsDirty = true
	if err := d.store.Put(source); err != nil {
		return err
	}

	d.log.Debug("sub-asset extracted", "source", sa.path, "name", sa.name, "dest", dest)
	return nil
}

// UniquePath returns candidate if nothing exists there, otherwise the first
// free "<stem> N<ext>" in the same folder.
func (d *DB) UniquePath(ctx context.Context, candidate string) (string, error) {
	dir, base := path.Split(candidate)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	try := candidate
	for n := 1; ; n++ {
		taken, err := d.taken(try)
		if err != nil {
			return "", err
		}
		if !taken {
			return try, nil
		}
		try = dir + stem + " " + strconv.Itoa(n) + ext
	}
}

func (d *DB) taken(virtual string) (bool, error) {
	abs, err := d.AbsPath(virtual)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err == nil {
		return true, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	_, err = d.store.Get(virtual)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// SetTextureImportType changes how a texture is imported. The change takes
// effect on the next Register of the texture.
func (d *DB) SetTextureImportType(ctx context.Context, virtual string, kind host.TextureKind) error {
	rec, err := d.store.Get(virtual)
	if err != nil {
		return err
	}
	if rec.Type != host.TypeTexture {
		return fmt.Errorf("%w: %s is %s, not %s", ErrWrongType, virtual, rec.Type, host.TypeTexture)
	}
	if rec.TextureKind == kind {
		return nil
	}
	rec.TextureKind = kind
	rec.SettingsDirty = true
	return d.store.Put(rec)
}

// WriteImportSettingsIfDirty writes the sidecar settings of an asset whose
// settings changed since they were last written.
func (d *DB) WriteImportSettingsIfDirty(ctx context.Context, virtual string) error {
	rec, err := d.store.Get(virtual)
	if err != nil {
		return err
	}
	if !rec.SettingsDirty {
		return nil
	}
	abs, err := d.AbsPath(virtual)
	if err != nil {
		return err
	}
	if err := d.writeSettings(rec, abs); err != nil {
		return err
	}
	rec.SettingsDirty = false
	return d.store.Put(rec)
}

// SaveAll writes every modified material to disk.
func (d *DB) SaveAll(ctx context.Context) error {
	saved := 0
	for virtual, m := range d.materials {
		if !m.dirty {
			continue
		}
		abs, err := d.AbsPath(virtual)
		if err != nil {
			return err
		}
		if err := m.save(abs); err != nil {
			return fmt.Errorf("save %s: %w", virtual, err)
		}
		if err := d.touch(virtual, abs); err != nil {
			return err
		}
		saved++
	}
	if saved > 0 {
		d.log.Debug("assets saved", "count", saved)
	}
	return nil
}

// touch records the current size and modification time of a saved file so
// a later Register does not treat it as changed.
func (d *DB) touch(virtual, abs string) error {
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	rec, err := d.store.Get(virtual)
	if err != nil {
		return err
	}
	rec.SizeBytes = info.Size()
	rec.ModTime = info.ModTime().UnixNano()
	return d.store.Put(rec)
}

func (d *DB) writeSettings(rec *Record, abs string) error {
	if rec.Type == host.TypeFolder {
		return nil
	}
	m := metaFile{GUID: rec.GUID, Type: string(rec.Type)}
	if rec.Type == host.TypeTexture {
		m.TextureKind = string(rec.TextureKind)
		if m.TextureKind == "" {
			m.TextureKind = string(host.TextureDefault)
		}
	}
	if rec.ID != 0 {
		remaps, err := d.store.Remaps(rec.ID)
		if err != nil {
			return err
		}
		for _, r := range remaps {
			m.Remaps = append(m.Remaps, metaRemap{Name: r.Name, Type: string(r.Type), Target: r.TargetPath})
		}
	}
	return writeMeta(abs, m)
}

// guidFor reuses the GUID from an existing sidecar so assets keep their
// identity when the catalog is rebuilt.
func (d *DB) guidFor(abs string) (string, error) {
	guid, err := readMetaGUID(abs)
	if err != nil {
		return "", err
	}
	if guid == "" {
		guid = uuid.NewString()
	}
	return guid, nil
}

// List returns catalog entries under prefix.
func (d *DB) List(prefix string) ([]*Record, error) {
	return d.store.List(prefix)
}

var textureExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tga": true, "tif": true,
	"tiff": true, "exr": true, "bmp": true, "psd": true, "hdr": true,
	"dds": true, "webp": true, "gif": true, "ktx": true, "ktx2": true,
}

func typeForPath(virtual string, isDir bool) host.AssetType {
	if isDir {
		return host.TypeFolder
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(virtual), "."))
	switch {
	case ext == "obj":
		return host.TypeGeometry
	case ext == "mtl":
		return host.TypeMaterialLibrary
	case ext == "mat":
		return host.TypeMaterial
	case textureExtensions[ext]:
		return host.TypeTexture
	default:
		return host.TypeUnknown
	}
}

// asset is a plain loaded asset.
type asset struct {
	name string
	typ  host.AssetType
	path string
}

func (a *asset) Name() string         { return a.name }
func (a *asset) Type() host.AssetType { return a.typ }
func (a *asset) Path() string         { return a.path }

// subAsset is an entry embedded in another asset's file.
type subAsset struct {
	asset
	sourceID int64
	payload  string
}
