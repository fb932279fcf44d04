package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
	"go.uber.org/mock/gomock"
)

const chairAsset = "Assets/Models/Chair/Chair.obj"

func chairSubAssets() []host.SubAsset {
	sub := func(name string, t host.AssetType) host.SubAsset {
		return host.SubAsset{Name: name, Type: t, Handle: &handle{name: name, typ: t, path: chairAsset}}
	}
	return []host.SubAsset{
		sub("Chair", host.TypeGeometry),
		sub("Chair", host.TypeMesh),
		sub("Seat", host.TypeMaterial),
		sub("Legs", host.TypeMaterial),
		sub("Chair", host.TypeMaterialLibrary),
	}
}

func TestExtractMaterials(t *testing.T) {
	imp, h, rec, _ := setupMockImporter(t)
	ctx := context.Background()
	subs := chairSubAssets()

	h.EXPECT().LoadAllSubAssets(gomock.Any(), chairAsset).Return(subs, nil)
	h.EXPECT().UniquePath(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, candidate string) (string, error) { return candidate, nil },
	).Times(2)
	h.EXPECT().ExtractSubAsset(gomock.Any(), subs[2].Handle, "Assets/Models/Chair/Materials/Seat.mat").Return(nil)
	h.EXPECT().ExtractSubAsset(gomock.Any(), subs[3].Handle, "Assets/Models/Chair/Materials/Legs.mat").
		Return(errors.New("destination exists"))

	// The source is flushed and re-imported once for both attempts.
	gomock.InOrder(
		h.EXPECT().WriteImportSettingsIfDirty(gomock.Any(), chairAsset),
		h.EXPECT().Register(gomock.Any(), chairAsset, host.ImportOptions{ForceUpdate: true}),
	)

	result, err := imp.ExtractMaterials(ctx, chairAsset, "Assets/Models/Chair/Materials/")
	require.NoError(t, err)
	assert.Equal(t, []string{"Assets/Models/Chair/Materials/Seat.mat"}, result.Paths)
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, []string{events.EventMaterialExtracted, events.EventExtractFailed}, rec.types())
}

func TestExtractMaterials_UsesUniquePath(t *testing.T) {
	imp, h, _, _ := setupMockImporter(t)
	subs := []host.SubAsset{{Name: "Seat", Type: host.TypeMaterial, Handle: &handle{name: "Seat", typ: host.TypeMaterial}}}

	h.EXPECT().LoadAllSubAssets(gomock.Any(), chairAsset).Return(subs, nil)
	h.EXPECT().UniquePath(gomock.Any(), "Assets/Models/Chair/Materials/Seat.mat").
		Return("Assets/Models/Chair/Materials/Seat 1.mat", nil)
	h.EXPECT().ExtractSubAsset(gomock.Any(), subs[0].Handle, "Assets/Models/Chair/Materials/Seat 1.mat")
	h.EXPECT().WriteImportSettingsIfDirty(gomock.Any(), chairAsset)
	h.EXPECT().Register(gomock.Any(), chairAsset, gomock.Any())

	result, err := imp.ExtractMaterials(context.Background(), chairAsset, "Assets/Models/Chair/Materials")
	require.NoError(t, err)
	assert.Equal(t, []string{"Assets/Models/Chair/Materials/Seat 1.mat"}, result.Paths)
}

func TestExtractMaterials_SanitizesNames(t *testing.T) {
	imp, h, _, _ := setupMockImporter(t)
	subs := []host.SubAsset{{Name: "../Seat", Type: host.TypeMaterial, Handle: &handle{name: "../Seat", typ: host.TypeMaterial}}}

	h.EXPECT().LoadAllSubAssets(gomock.Any(), chairAsset).Return(subs, nil)
	h.EXPECT().UniquePath(gomock.Any(), "Assets/Models/Chair/Materials/_Seat.mat").
		Return("Assets/Models/Chair/Materials/_Seat.mat", nil)
	h.EXPECT().ExtractSubAsset(gomock.Any(), gomock.Any(), "Assets/Models/Chair/Materials/_Seat.mat")
	h.EXPECT().WriteImportSettingsIfDirty(gomock.Any(), gomock.Any())
	h.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := imp.ExtractMaterials(context.Background(), chairAsset, "Assets/Models/Chair/Materials")
	require.NoError(t, err)
}

func TestExtractMaterials_NoMaterials(t *testing.T) {
	imp, h, rec, _ := setupMockImporter(t)
	subs := chairSubAssets()
	subs = append(subs[:2], subs[4])

	h.EXPECT().LoadAllSubAssets(gomock.Any(), chairAsset).Return(subs, nil)

	result, err := imp.ExtractMaterials(context.Background(), chairAsset, "Assets/Models/Chair/Materials")
	require.NoError(t, err)
	assert.Empty(t, result.Paths)
	assert.Zero(t, result.Failures)
	assert.Empty(t, rec.types())
}

func TestExtractMaterials_LoadError(t *testing.T) {
	imp, h, _, _ := setupMockImporter(t)

	h.EXPECT().LoadAllSubAssets(gomock.Any(), chairAsset).Return(nil, assert.AnError)

	_, err := imp.ExtractMaterials(context.Background(), chairAsset, "Assets/Models/Chair/Materials")
	assert.ErrorIs(t, err, assert.AnError)
}
