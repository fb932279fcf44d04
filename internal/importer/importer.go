// Package importer copies a model export into the project and turns its
// embedded materials into standalone, textured material assets.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
)

// Publisher receives import events. *events.Bus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Shading holds the parameters the binder writes to materials.
type Shading struct {
	SmoothnessRemapMax float64
	NormalScale        float64
	// EmissiveIntensity and EmissiveColor are written only when an
	// emission texture is bound.
	EmissiveIntensity float64
	EmissiveColor     host.Color
}

// DefaultShading returns the stock shading overrides.
func DefaultShading() Shading {
	return Shading{
		SmoothnessRemapMax: 0.4,
		NormalScale:        1.2,
		EmissiveIntensity:  40.0,
		EmissiveColor:      host.Red,
	}
}

// Config for the importer.
type Config struct {
	// ProjectRoot is the directory that contains Assets/.
	ProjectRoot string
	// ModelsPath is the virtual folder models are imported into.
	ModelsPath     string
	GeometryExt    string
	MaterialDefExt string
	Shading        Shading
}

// Importer runs the model import pipeline against a host.
type Importer struct {
	host   host.Host
	cfg    Config
	events Publisher // nil disables events
	log    *slog.Logger
}

// New creates a new importer. Empty config fields get their defaults.
func New(h host.Host, cfg Config, pub Publisher, log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ModelsPath == "" {
		cfg.ModelsPath = "Assets/Models"
	}
	if cfg.GeometryExt == "" {
		cfg.GeometryExt = "obj"
	}
	if cfg.MaterialDefExt == "" {
		cfg.MaterialDefExt = "mtl"
	}
	if cfg.Shading == (Shading{}) {
		cfg.Shading = DefaultShading()
	}
	return &Importer{
		host:   h,
		cfg:    cfg,
		events: pub,
		log:    log,
	}
}

// ImportResult is the result of an import operation.
type ImportResult struct {
	ModelName       string
	ModelFolder     string
	GeometryPath    string // managed virtual path
	MaterialDefPath string // managed virtual path
	FoldersCreated  []string
	Materials       []MaterialBinding
	ExtractErrors   int
}

// TextureCount returns the number of texture slots bound across materials.
func (r *ImportResult) TextureCount() int {
	n := 0
	for _, m := range r.Materials {
		n += len(m.Bound())
	}
	return n
}

// Import copies a geometry file and its sibling material definition into
// the project, extracts the embedded materials, and binds their textures.
// With an empty geometryPath the host file picker is used; if nothing is
// picked ErrNoSelection is returned and nothing is touched.
// Any host failure aborts the run; files already copied are left in place.
func (i *Importer) Import(ctx context.Context, geometryPath string) (*ImportResult, error) {
	if geometryPath == "" {
		picked, err := i.host.PickFile(ctx, "Import model", i.cfg.GeometryExt)
		if err != nil {
			return nil, fmt.Errorf("pick file: %w", err)
		}
		if picked == "" {
			return nil, ErrNoSelection
		}
		geometryPath = picked
	}

	job, err := NewModelImportJob(geometryPath, i.cfg.MaterialDefExt, i.cfg.ModelsPath)
	if err != nil {
		return nil, err
	}
	i.log.Info("import started", "model", job.ModelName, "path", job.SourceGeometryPath)
	i.publish(ctx, &events.ImportStarted{
		BaseEvent:  events.NewBaseEvent(events.EventImportStarted, events.EntityModel, job.ModelName),
		SourcePath: job.SourceGeometryPath,
	})

	result, stage, err := i.run(ctx, job)
	if err != nil {
		i.log.Error("import failed", "model", job.ModelName, "stage", stage, "error", err)
		i.publish(ctx, &events.ImportFailed{
			BaseEvent: events.NewBaseEvent(events.EventImportFailed, events.EntityModel, job.ModelName),
			Stage:     stage,
			Reason:    err.Error(),
		})
		return nil, err
	}

	i.log.Info("import complete", "model", job.ModelName, "materials", len(result.Materials),
		"textures", result.TextureCount(), "extract_errors", result.ExtractErrors)
	i.publish(ctx, &events.ImportCompleted{
		BaseEvent:     events.NewBaseEvent(events.EventImportCompleted, events.EntityModel, job.ModelName),
		Materials:     len(result.Materials),
		Textures:      result.TextureCount(),
		ExtractErrors: result.ExtractErrors,
	})
	return result, nil
}

// run executes the pipeline stages in order and reports the failing stage.
func (i *Importer) run(ctx context.Context, job *ModelImportJob) (*ImportResult, string, error) {
	geometry, err := os.ReadFile(job.SourceGeometryPath)
	if err != nil {
		return nil, "read", fmt.Errorf("read geometry: %w", err)
	}
	materialDef, err := os.ReadFile(job.SourceMaterialDefPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "read", fmt.Errorf("%w: %w", ErrMissingSibling, err)
	}
	if err != nil {
		return nil, "read", fmt.Errorf("read material definition: %w", err)
	}

	created, err := i.EnsureFolders(ctx, job.ModelName)
	if err != nil {
		return nil, "folders", err
	}
	i.publish(ctx, &events.FoldersProvisioned{
		BaseEvent: events.NewBaseEvent(events.EventFoldersProvisioned, events.EntityModel, job.ModelName),
		Created:   created,
	})

	result := &ImportResult{
		ModelName:       job.ModelName,
		ModelFolder:     job.ModelFolder,
		GeometryPath:    job.AssetPath(i.cfg.GeometryExt),
		MaterialDefPath: job.AssetPath(i.cfg.MaterialDefExt),
		FoldersCreated:  created,
	}

	// The material library goes first so the geometry import can see it.
	if err := i.copyAndRegister(ctx, result.MaterialDefPath, materialDef); err != nil {
		return nil, "copy", err
	}
	if err := i.copyAndRegister(ctx, result.GeometryPath, geometry); err != nil {
		return nil, "copy", err
	}
	if err := i.host.Refresh(ctx, host.ImportOptions{}); err != nil {
		return nil, "copy", fmt.Errorf("refresh: %w", err)
	}

	extracted, err := i.ExtractMaterials(ctx, result.GeometryPath, job.MaterialsFolder())
	if err != nil {
		return nil, "extract", err
	}
	result.ExtractErrors = extracted.Failures
	if err := i.host.Refresh(ctx, host.ImportOptions{}); err != nil {
		return nil, "extract", fmt.Errorf("refresh: %w", err)
	}

	result.Materials, err = i.BindTextures(ctx, job.MaterialsFolder(), job.SourceDirectory, job.ModelName)
	if err != nil {
		return nil, "bind", err
	}
	return result, "", nil
}

func (i *Importer) copyAndRegister(ctx context.Context, virtual string, data []byte) error {
	abs, err := i.absPath(virtual)
	if err != nil {
		return err
	}
	if err := writeFile(abs, data); err != nil {
		return err
	}
	i.log.Debug("file copied", "dest", virtual, "size_bytes", len(data))

	if err := i.host.Register(ctx, virtual, host.ImportOptions{}); err != nil {
		return fmt.Errorf("register %s: %w", virtual, err)
	}
	return nil
}

// absPath maps a virtual path under the models folder onto the project
// directory.
func (i *Importer) absPath(virtual string) (string, error) {
	abs := filepath.Join(i.cfg.ProjectRoot, filepath.FromSlash(virtual))
	root := filepath.Join(i.cfg.ProjectRoot, filepath.FromSlash(i.cfg.ModelsPath))
	if err := ValidatePath(abs, root); err != nil {
		return "", fmt.Errorf("%w: %s", err, virtual)
	}
	return abs, nil
}

// publish sends e to the event publisher, if any. Failures are logged.
func (i *Importer) publish(ctx context.Context, e events.Event) {
	if i.events == nil {
		return
	}
	if err := i.events.Publish(ctx, e); err != nil {
		i.log.Warn("publish event failed", "type", e.EventType(), "error", err)
	}
}
