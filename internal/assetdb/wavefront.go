package assetdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// objInfo is what the geometry importer needs from a Wavefront OBJ file.
type objInfo struct {
	MaterialLibs  []string
	UsedMaterials []string // first-use order, no duplicates
	Vertices      int
	Faces         int
}

// mtlMaterial is one newmtl block of a Wavefront MTL file.
type mtlMaterial struct {
	Name      string
	Diffuse   []float64 // Kd
	Emissive  []float64 // Ke
	Shininess float64   // Ns
	HasNs     bool
	Dissolve  float64 // d
	HasD      bool
	Maps      map[string]string // map_Kd, map_bump, ...
}

func parseOBJ(name string, r io.Reader) (*objInfo, error) {
	info := &objInfo{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "v":
			info.Vertices++
		case "f":
			info.Faces++
		case "mtllib":
			if len(tokens) < 2 {
				return nil, fmt.Errorf("%s:%d: mtllib without a file name", name, lineNum)
			}
			info.MaterialLibs = append(info.MaterialLibs, tokens[1:]...)
		case "usemtl":
			mat := statementName(line, tokens[0])
			if mat == "" {
				return nil, fmt.Errorf("%s:%d: usemtl without a material name", name, lineNum)
			}
			if !seen[mat] {
				seen[mat] = true
				info.UsedMaterials = append(info.UsedMaterials, mat)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return info, nil
}

// parseMTL reads the newmtl blocks of an MTL file. Property lines that
// cannot be read are skipped and returned as warnings.
func parseMTL(name string, r io.Reader) ([]*mtlMaterial, []error, error) {
	var materials []*mtlMaterial
	var warnings []error
	var cur *mtlMaterial

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		if tokens[0] == "newmtl" {
			mat := statementName(line, tokens[0])
			if mat == "" {
				return nil, nil, fmt.Errorf("%s:%d: newmtl without a material name", name, lineNum)
			}
			cur = &mtlMaterial{Name: mat, Maps: make(map[string]string)}
			materials = append(materials, cur)
			continue
		}
		if cur == nil {
			warnings = append(warnings, fmt.Errorf("%s:%d: %q without a newmtl", name, lineNum, tokens[0]))
			continue
		}

		var err error
		switch tokens[0] {
		case "Kd", "Ke":
			var rgb []float64
			if rgb, err = parseFloats(tokens[1:], 3); err == nil {
				if tokens[0] == "Kd" {
					cur.Diffuse = rgb
				} else {
					cur.Emissive = rgb
				}
			}
		case "Ns", "d":
			var v float64
			if v, err = parseFloat(tokens[1:]); err == nil {
				if tokens[0] == "Ns" {
					cur.Shininess, cur.HasNs = v, true
				} else {
					cur.Dissolve, cur.HasD = v, true
				}
			}
		default:
			if strings.HasPrefix(tokens[0], "map_") || tokens[0] == "bump" || tokens[0] == "norm" {
				// Options may precede the file name; the name is last.
				if len(tokens) > 1 {
					cur.Maps[tokens[0]] = tokens[len(tokens)-1]
				}
			}
		}
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s:%d: %s: %w", name, lineNum, tokens[0], err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", name, err)
	}
	return materials, warnings, nil
}

// statementName returns everything after the keyword on line, so names
// with spaces such as "Material #25" survive.
func statementName(line, keyword string) string {
	rest := strings.TrimSpace(line)
	return strings.TrimSpace(rest[len(keyword):])
}

func parseFloat(tokens []string) (float64, error) {
	if len(tokens) != 1 {
		return 0, fmt.Errorf("expected 1 value, got %d", len(tokens))
	}
	return strconv.ParseFloat(tokens[0], 64)
}

func parseFloats(tokens []string, n int) ([]float64, error) {
	if len(tokens) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(tokens))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
