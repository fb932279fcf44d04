package importer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/internal/host/mocks"
	"github.com/vmunix/substance/pkg/texmatch"
	"go.uber.org/mock/gomock"
)

const (
	chairMaterials = "Assets/Models/Chair/Materials"
	seatMat        = "Assets/Models/Chair/Materials/Seat.mat"
)

// setupBinder prepares Chair folders with a Seat.mat file and a texture
// source directory holding files.
func setupBinder(t *testing.T, files map[string]string) (*Importer, *mocks.MockHost, *mocks.MockMaterial, *recorder, string) {
	t.Helper()
	imp, h, rec, root := setupMockImporter(t)
	modelFolders(t, root, "Chair")
	writeFiles(t, root, map[string]string{
		"Assets/Models/Chair/Materials/Seat.mat":      "name = 'Seat'",
		"Assets/Models/Chair/Materials/Seat.mat.meta": "guid = 'x'",
		"Assets/Models/Chair/Materials/notes.txt":     "not a material",
	})

	src := t.TempDir()
	writeFiles(t, src, files)

	mat := mocks.NewMockMaterial(gomock.NewController(t))
	// Seat.mat.meta and notes.txt are not materials and must be skipped.
	h.EXPECT().LoadAsset(gomock.Any(), seatMat, host.TypeMaterial).Return(mat, nil)
	return imp, h, mat, rec, src
}

// expectShadingAndSave expects the unconditional overrides and the save.
func expectShadingAndSave(h *mocks.MockHost, mat *mocks.MockMaterial) {
	mat.EXPECT().SetFloat("_SmoothnessRemapMax", 0.4)
	mat.EXPECT().SetFloat("_NormalScale", 1.2)
	gomock.InOrder(
		h.EXPECT().SaveAll(gomock.Any()),
		h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{ForceSynchronous: true}),
	)
}

func TestBindTextures_NoTextures(t *testing.T) {
	imp, h, mat, rec, src := setupBinder(t, map[string]string{"readme.txt": "nothing here"})
	expectShadingAndSave(h, mat)

	bindings, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
	require.Len(t, bindings, 1)

	b := bindings[0]
	assert.Equal(t, "Seat", b.MaterialName)
	assert.Equal(t, seatMat, b.Path)
	require.Len(t, b.Assignments, 4)
	assert.Empty(t, b.Bound())
	for i, a := range b.Assignments {
		assert.Equal(t, texmatch.Roles[i], a.Role)
		assert.False(t, a.Found)
	}
	assert.Equal(t, []string{events.EventMaterialBound}, rec.types())
}

func TestBindTextures_BaseColorAndMetallic(t *testing.T) {
	imp, h, mat, rec, src := setupBinder(t, map[string]string{
		"Seat_BaseColor.png": "base",
		"Seat_Metallic.png":  "mask",
	})
	const (
		base = "Assets/Models/Chair/Textures/Seat_BaseColor.png"
		mask = "Assets/Models/Chair/Textures/Seat_Metallic.png"
	)
	baseTex := &handle{name: "Seat_BaseColor", typ: host.TypeTexture, path: base}
	maskTex := &handle{name: "Seat_Metallic", typ: host.TypeTexture, path: mask}

	h.EXPECT().Register(gomock.Any(), base, host.ImportOptions{ForceUpdate: true})
	h.EXPECT().Register(gomock.Any(), mask, host.ImportOptions{ForceUpdate: true})
	h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{}).Times(2)
	h.EXPECT().LoadAsset(gomock.Any(), base, host.TypeTexture).Return(baseTex, nil)
	h.EXPECT().LoadAsset(gomock.Any(), mask, host.TypeTexture).Return(maskTex, nil)
	mat.EXPECT().SetTexture("_BaseColorMap", baseTex)
	mat.EXPECT().SetTexture("_MaskMap", maskTex)
	expectShadingAndSave(h, mat)

	bindings, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
	require.Len(t, bindings, 1)

	bound := bindings[0].Bound()
	require.Len(t, bound, 2)
	assert.Equal(t, texmatch.RoleBaseColor, bound[0].Role)
	assert.Equal(t, base, bound[0].Path)
	assert.Equal(t, texmatch.RoleMetallic, bound[1].Role)
	assert.Equal(t, []string{
		events.EventTextureBound,
		events.EventTextureBound,
		events.EventMaterialBound,
	}, rec.types())
}

func TestBindTextures_NormalIsRetaggedBeforeLoad(t *testing.T) {
	imp, h, mat, _, src := setupBinder(t, map[string]string{"Seat_Normal.png": "normal"})
	const normal = "Assets/Models/Chair/Textures/Seat_Normal.png"
	tex := &handle{name: "Seat_Normal", typ: host.TypeTexture, path: normal}

	gomock.InOrder(
		h.EXPECT().Register(gomock.Any(), normal, host.ImportOptions{ForceUpdate: true}),
		h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{}),
		h.EXPECT().SetTextureImportType(gomock.Any(), normal, host.TextureNormalMap),
		h.EXPECT().Register(gomock.Any(), normal, host.ImportOptions{}),
		h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{}),
		h.EXPECT().LoadAsset(gomock.Any(), normal, host.TypeTexture).Return(tex, nil),
		mat.EXPECT().SetTexture("_NormalMap", tex),
	)
	expectShadingAndSave(h, mat)

	_, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
}

func TestBindTextures_EmissionOverrides(t *testing.T) {
	imp, h, mat, _, src := setupBinder(t, map[string]string{"Seat_Emission.png": "glow"})
	const emission = "Assets/Models/Chair/Textures/Seat_Emission.png"
	tex := &handle{name: "Seat_Emission", typ: host.TypeTexture, path: emission}

	h.EXPECT().Register(gomock.Any(), emission, host.ImportOptions{ForceUpdate: true})
	h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{})
	h.EXPECT().LoadAsset(gomock.Any(), emission, host.TypeTexture).Return(tex, nil)
	mat.EXPECT().SetTexture("_EmissiveColorMap", tex)
	mat.EXPECT().SetInt("_UseEmissiveIntensity", 1)
	mat.EXPECT().EnableKeyword("_EMISSION")
	mat.EXPECT().SetFloat("_EmissiveIntensity", 40.0)
	mat.EXPECT().SetColor("_EmissiveColor", host.Red)
	expectShadingAndSave(h, mat)

	_, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
}

func TestBindTextures_UnloadableTextureLeavesSlotEmpty(t *testing.T) {
	imp, h, mat, rec, src := setupBinder(t, map[string]string{
		"Seat_Normal.raw":      "bumps",
		"Seat_Emission.v2.png": "glow",
	})
	const (
		normal   = "Assets/Models/Chair/Textures/Seat_Normal.raw"
		emission = "Assets/Models/Chair/Textures/Seat_Emission.v2"
	)

	h.EXPECT().Register(gomock.Any(), normal, host.ImportOptions{ForceUpdate: true})
	h.EXPECT().Register(gomock.Any(), emission, host.ImportOptions{ForceUpdate: true})
	h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{}).Times(2)
	h.EXPECT().SetTextureImportType(gomock.Any(), normal, host.TextureNormalMap).
		Return(fmt.Errorf("%w: %s is Unknown", host.ErrWrongType, normal))
	h.EXPECT().LoadAsset(gomock.Any(), normal, host.TypeTexture).Return(nil, nil)
	h.EXPECT().LoadAsset(gomock.Any(), emission, host.TypeTexture).Return(nil, nil)
	mat.EXPECT().SetTexture("_NormalMap", gomock.Nil())
	mat.EXPECT().SetTexture("_EmissiveColorMap", gomock.Nil())
	mat.EXPECT().SetInt("_UseEmissiveIntensity", 1)
	mat.EXPECT().EnableKeyword("_EMISSION")
	mat.EXPECT().SetFloat("_EmissiveIntensity", 40.0)
	mat.EXPECT().SetColor("_EmissiveColor", host.Red)
	expectShadingAndSave(h, mat)

	bindings, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Empty(t, bindings[0].Bound())
	assert.Equal(t, normal, bindings[0].Assignments[2].Path)
	assert.Equal(t, []string{events.EventMaterialBound}, rec.types())
}

func TestBindTextures_ConfiguredShading(t *testing.T) {
	base, h, mat, _, src := setupBinder(t, map[string]string{"Seat_Emission.png": "glow"})
	imp := New(h, Config{
		ProjectRoot: base.cfg.ProjectRoot,
		Shading: Shading{
			SmoothnessRemapMax: 0.6,
			NormalScale:        2,
			EmissiveIntensity:  10,
			EmissiveColor:      host.Color{G: 1, A: 1},
		},
	}, nil, testLogger())

	h.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any())
	h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{})
	h.EXPECT().LoadAsset(gomock.Any(), gomock.Any(), host.TypeTexture).
		Return(&handle{typ: host.TypeTexture}, nil)
	mat.EXPECT().SetTexture("_EmissiveColorMap", gomock.Any())
	mat.EXPECT().SetInt("_UseEmissiveIntensity", 1)
	mat.EXPECT().EnableKeyword("_EMISSION")
	mat.EXPECT().SetFloat("_EmissiveIntensity", 10.0)
	mat.EXPECT().SetColor("_EmissiveColor", host.Color{G: 1, A: 1})
	mat.EXPECT().SetFloat("_SmoothnessRemapMax", 0.6)
	mat.EXPECT().SetFloat("_NormalScale", 2.0)
	h.EXPECT().SaveAll(gomock.Any())
	h.EXPECT().Refresh(gomock.Any(), host.ImportOptions{ForceSynchronous: true})

	_, err := imp.BindTextures(context.Background(), chairMaterials, src, "Chair")
	require.NoError(t, err)
}

func TestBindTextures_NotAMaterial(t *testing.T) {
	imp, h, rec, root := setupMockImporter(t)
	modelFolders(t, root, "Chair")
	writeFiles(t, root, map[string]string{"Assets/Models/Chair/Materials/Seat.mat": ""})

	h.EXPECT().LoadAsset(gomock.Any(), seatMat, host.TypeMaterial).
		Return(&handle{name: "Seat", typ: host.TypeMaterial, path: seatMat}, nil)

	_, err := imp.BindTextures(context.Background(), chairMaterials, t.TempDir(), "Chair")
	assert.ErrorIs(t, err, ErrNotMaterial)
	assert.Empty(t, rec.types())
}
