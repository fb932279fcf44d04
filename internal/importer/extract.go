package importer

import (
	"context"
	"fmt"

	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/pkg/assetpath"
)

// ExtractResult lists what ExtractMaterials produced.
type ExtractResult struct {
	// Paths are the virtual paths of the extracted material files.
	Paths []string
	// Failures counts embedded materials that could not be extracted.
	Failures int
}

// ExtractMaterials writes every embedded sub-asset of type Material in the
// geometry asset to its own file in destFolder. A failed item is logged and
// skipped. Afterwards each source that had items extracted, or attempted,
// gets its import settings flushed and is re-imported once.
func (i *Importer) ExtractMaterials(ctx context.Context, geometryPath, destFolder string) (*ExtractResult, error) {
	subs, err := i.host.LoadAllSubAssets(ctx, geometryPath)
	if err != nil {
		return nil, fmt.Errorf("load sub-assets of %s: %w", geometryPath, err)
	}

	result := &ExtractResult{}
	var reimport []string
	seen := make(map[string]bool)

	for _, sub := range subs {
		if sub.Type != host.TypeMaterial {
			continue
		}

		candidate := assetpath.Join(destFolder, SanitizeAssetName(sub.Name)+".mat")
		dest, err := i.host.UniquePath(ctx, candidate)
		if err != nil {
			return result, fmt.Errorf("unique path for %s: %w", candidate, err)
		}

		if err := i.host.ExtractSubAsset(ctx, sub.Handle, dest); err != nil {
			result.Failures++
			i.log.Warn("material extraction failed", "source", geometryPath, "material", sub.Name, "error", err)
			i.publish(ctx, &events.ExtractFailed{
				BaseEvent:  events.NewBaseEvent(events.EventExtractFailed, events.EntityMaterial, sub.Name),
				SourcePath: geometryPath,
				Reason:     err.Error(),
			})
		} else {
			result.Paths = append(result.Paths, dest)
			i.log.Debug("material extracted", "source", geometryPath, "dest", dest)
			i.publish(ctx, &events.MaterialExtracted{
				BaseEvent:  events.NewBaseEvent(events.EventMaterialExtracted, events.EntityMaterial, dest),
				SourcePath: geometryPath,
				DestPath:   dest,
			})
		}

		if !seen[geometryPath] {
			seen[geometryPath] = true
			reimport = append(reimport, geometryPath)
		}
	}

	for _, src := range reimport {
		if err := i.host.WriteImportSettingsIfDirty(ctx, src); err != nil {
			return result, fmt.Errorf("write import settings for %s: %w", src, err)
		}
		if err := i.host.Register(ctx, src, host.ImportOptions{ForceUpdate: true}); err != nil {
			return result, fmt.Errorf("re-import %s: %w", src, err)
		}
	}

	i.log.Info("materials extracted", "source", geometryPath, "count", len(result.Paths), "failures", result.Failures)
	return result, nil
}
