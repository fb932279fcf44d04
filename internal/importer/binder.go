package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/pkg/assetpath"
	"github.com/vmunix/substance/pkg/texmatch"
)

// Material property names written by the binder.
const (
	propUseEmissiveIntensity = "_UseEmissiveIntensity"
	propEmissiveIntensity    = "_EmissiveIntensity"
	propEmissiveColor        = "_EmissiveColor"
	propSmoothnessRemapMax   = "_SmoothnessRemapMax"
	propNormalScale          = "_NormalScale"
	keywordEmission          = "_EMISSION"
)

// TextureAssignment is the outcome of resolving one role for one material.
type TextureAssignment struct {
	MaterialName string
	Role         texmatch.Role
	// Path is the managed texture path; empty when no source file matched.
	Path string
	// Found reports that a texture was copied and bound to the slot.
	Found bool
}

// MaterialBinding is what BindTextures did to one material asset.
type MaterialBinding struct {
	MaterialName string
	Path         string
	Assignments  []TextureAssignment
}

// Bound returns the assignments whose texture was bound.
func (b MaterialBinding) Bound() []TextureAssignment {
	var out []TextureAssignment
	for _, a := range b.Assignments {
		if a.Found {
			out = append(out, a)
		}
	}
	return out
}

// BindTextures resolves the four texture roles for every material file in
// materialsFolder, searching loadPath, and binds what it finds. Shading
// overrides are applied to every material, bound or not. Each material is
// saved and the host refreshed before the next one is processed.
func (i *Importer) BindTextures(ctx context.Context, materialsFolder, loadPath, modelName string) ([]MaterialBinding, error) {
	abs, err := i.absPath(materialsFolder)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("list materials in %s: %w", materialsFolder, err)
	}

	var bindings []MaterialBinding
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".mat") {
			continue
		}
		b, err := i.bindMaterial(ctx, assetpath.Join(materialsFolder, e.Name()), loadPath, modelName)
		if err != nil {
			return bindings, err
		}
		bindings = append(bindings, *b)
	}
	return bindings, nil
}

func (i *Importer) bindMaterial(ctx context.Context, matPath, loadPath, modelName string) (*MaterialBinding, error) {
	name := assetpath.Stem(matPath)

	h, err := i.host.LoadAsset(ctx, matPath, host.TypeMaterial)
	if err != nil {
		return nil, fmt.Errorf("load material %s: %w", matPath, err)
	}
	mat, ok := h.(host.Material)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotMaterial, matPath)
	}

	binding := &MaterialBinding{MaterialName: name, Path: matPath}
	var bound, missing []string

	for _, role := range texmatch.Roles {
		texPath, found, err := i.ResolveTexture(ctx, modelName, loadPath, name, role)
		if err != nil {
			return nil, fmt.Errorf("resolve %s for %s: %w", role, name, err)
		}
		if found {
			found, err = i.bindRole(ctx, mat, role, texPath)
			if err != nil {
				return nil, err
			}
		}
		binding.Assignments = append(binding.Assignments, TextureAssignment{
			MaterialName: name,
			Role:         role,
			Path:         texPath,
			Found:        found,
		})
		if !found {
			missing = append(missing, string(role))
			continue
		}
		bound = append(bound, string(role))
		i.publish(ctx, &events.TextureBound{
			BaseEvent:   events.NewBaseEvent(events.EventTextureBound, events.EntityMaterial, matPath),
			Role:        string(role),
			Slot:        role.Slot(),
			TexturePath: texPath,
		})
	}

	shading := i.cfg.Shading
	mat.SetFloat(propSmoothnessRemapMax, shading.SmoothnessRemapMax)
	mat.SetFloat(propNormalScale, shading.NormalScale)

	if err := i.host.SaveAll(ctx); err != nil {
		return nil, fmt.Errorf("save assets: %w", err)
	}
	if err := i.host.Refresh(ctx, host.ImportOptions{ForceSynchronous: true}); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	i.log.Debug("material bound", "material", matPath, "bound", bound, "missing", missing)
	i.publish(ctx, &events.MaterialBound{
		BaseEvent: events.NewBaseEvent(events.EventMaterialBound, events.EntityMaterial, matPath),
		Bound:     bound,
		Missing:   missing,
	})
	return binding, nil
}

// bindRole assigns the texture at texPath to the slot for role and reports
// whether the host loaded it as a texture. A file the host does not import
// as a texture leaves the slot empty; the emission overrides still apply.
func (i *Importer) bindRole(ctx context.Context, mat host.Material, role texmatch.Role, texPath string) (bool, error) {
	if role == texmatch.RoleNormal {
		err := i.host.SetTextureImportType(ctx, texPath, host.TextureNormalMap)
		switch {
		case errors.Is(err, host.ErrWrongType):
			i.log.Warn("not a texture, normal map import skipped", "path", texPath)
		case err != nil:
			return false, fmt.Errorf("mark %s as normal map: %w", texPath, err)
		default:
			if err := i.host.Register(ctx, texPath, host.ImportOptions{}); err != nil {
				return false, fmt.Errorf("re-import %s: %w", texPath, err)
			}
			if err := i.host.Refresh(ctx, host.ImportOptions{}); err != nil {
				return false, fmt.Errorf("refresh: %w", err)
			}
		}
	}

	tex, err := i.host.LoadAsset(ctx, texPath, host.TypeTexture)
	if err != nil {
		return false, fmt.Errorf("load texture %s: %w", texPath, err)
	}
	if tex == nil {
		i.log.Warn("texture not loadable, slot left empty", "path", texPath, "slot", role.Slot())
	}
	mat.SetTexture(role.Slot(), tex)

	if role == texmatch.RoleEmission {
		shading := i.cfg.Shading
		mat.SetInt(propUseEmissiveIntensity, 1)
		mat.EnableKeyword(keywordEmission)
		mat.SetFloat(propEmissiveIntensity, shading.EmissiveIntensity)
		mat.SetColor(propEmissiveColor, shading.EmissiveColor)
	}
	return tex != nil, nil
}
