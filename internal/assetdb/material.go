package assetdb

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/vmunix/substance/internal/host"
	"github.com/vmunix/substance/pkg/assetpath"
)

// defaultShader is written into materials created from MTL definitions.
const defaultShader = "HDRP/Lit"

// materialFile is the on-disk TOML form of a .mat asset.
type materialFile struct {
	Name     string               `toml:"name"`
	Shader   string               `toml:"shader"`
	Textures map[string]string    `toml:"textures"`
	Floats   map[string]float64   `toml:"floats"`
	Ints     map[string]int       `toml:"ints"`
	Colors   map[string][]float64 `toml:"colors"`
	Keywords []string             `toml:"keywords"`
}

func newMaterialFile(name string) materialFile {
	return materialFile{
		Name:     name,
		Shader:   defaultShader,
		Textures: make(map[string]string),
		Floats:   make(map[string]float64),
		Ints:     make(map[string]int),
		Colors:   make(map[string][]float64),
	}
}

// materialFromMTL converts an MTL definition into material properties.
func materialFromMTL(m *mtlMaterial) materialFile {
	f := newMaterialFile(m.Name)
	if m.Diffuse != nil {
		f.Colors["_BaseColor"] = []float64{m.Diffuse[0], m.Diffuse[1], m.Diffuse[2], 1}
	}
	if m.Emissive != nil {
		f.Colors["_EmissiveColor"] = []float64{m.Emissive[0], m.Emissive[1], m.Emissive[2], 1}
	}
	if m.HasNs {
		f.Floats["_Smoothness"] = min(max(m.Shininess/1000, 0), 1)
	}
	if m.HasD {
		f.Floats["_Alpha"] = m.Dissolve
	}
	return f
}

func encodeMaterial(f materialFile) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return "", fmt.Errorf("encode material %s: %w", f.Name, err)
	}
	return buf.String(), nil
}

func decodeMaterial(data string) (materialFile, error) {
	var f materialFile
	if _, err := toml.Decode(data, &f); err != nil {
		return materialFile{}, fmt.Errorf("decode material: %w", err)
	}
	if f.Textures == nil {
		f.Textures = make(map[string]string)
	}
	if f.Floats == nil {
		f.Floats = make(map[string]float64)
	}
	if f.Ints == nil {
		f.Ints = make(map[string]int)
	}
	if f.Colors == nil {
		f.Colors = make(map[string][]float64)
	}
	return f, nil
}

// Material is a loaded .mat asset. It implements host.Material.
type Material struct {
	path  string
	file  materialFile
	dirty bool
}

var _ host.Material = (*Material)(nil)

func (m *Material) Name() string         { return assetpath.Stem(m.path) }
func (m *Material) Type() host.AssetType { return host.TypeMaterial }
func (m *Material) Path() string         { return m.path }

// SetTexture binds texture to slot. A nil texture clears the slot.
func (m *Material) SetTexture(slot string, texture host.Handle) {
	if texture == nil {
		delete(m.file.Textures, slot)
	} else {
		m.file.Textures[slot] = texture.Path()
	}
	m.dirty = true
}

func (m *Material) SetFloat(name string, v float64) {
	m.file.Floats[name] = v
	m.dirty = true
}

func (m *Material) SetInt(name string, v int) {
	m.file.Ints[name] = v
	m.dirty = true
}

func (m *Material) SetColor(name string, c host.Color) {
	m.file.Colors[name] = []float64{c.R, c.G, c.B, c.A}
	m.dirty = true
}

func (m *Material) EnableKeyword(keyword string) {
	if slices.Contains(m.file.Keywords, keyword) {
		return
	}
	m.file.Keywords = append(m.file.Keywords, keyword)
	m.dirty = true
}

// Texture returns the texture path bound to slot.
func (m *Material) Texture(slot string) (string, bool) {
	p, ok := m.file.Textures[slot]
	return p, ok
}

// Float returns a float property.
func (m *Material) Float(name string) (float64, bool) {
	v, ok := m.file.Floats[name]
	return v, ok
}

// Int returns an int property.
func (m *Material) Int(name string) (int, bool) {
	v, ok := m.file.Ints[name]
	return v, ok
}

// Color returns a color property.
func (m *Material) Color(name string) (host.Color, bool) {
	v, ok := m.file.Colors[name]
	if !ok || len(v) != 4 {
		return host.Color{}, false
	}
	return host.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

// KeywordEnabled reports whether keyword is enabled.
func (m *Material) KeywordEnabled(keyword string) bool {
	return slices.Contains(m.file.Keywords, keyword)
}

func loadMaterial(virtualPath, absPath string) (*Material, error) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read material: %w", err)
	}
	f, err := decodeMaterial(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", virtualPath, err)
	}
	return &Material{path: virtualPath, file: f}, nil
}

func (m *Material) save(absPath string) error {
	data, err := encodeMaterial(m.file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(absPath, []byte(data), 0644); err != nil {
		return fmt.Errorf("write material: %w", err)
	}
	m.dirty = false
	return nil
}
