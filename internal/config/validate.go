package config

import (
	"fmt"
	"os"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if info, err := os.Stat(c.Project.Root); err != nil || !info.IsDir() {
		errs = append(errs, fmt.Sprintf("project.root: directory %q does not exist", c.Project.Root))
	}
	if strings.ContainsAny(c.Project.ModelsDir, `/\`) || c.Project.ModelsDir == ".." {
		errs = append(errs, fmt.Sprintf("project.models_dir: must be a single folder name, got %q", c.Project.ModelsDir))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	errs = append(errs, validateExt("import.geometry_ext", c.Import.GeometryExt, "obj")...)
	errs = append(errs, validateExt("import.material_def_ext", c.Import.MaterialDefExt, "mtl")...)

	if c.Shading.SmoothnessRemapMax < 0 || c.Shading.SmoothnessRemapMax > 1 {
		errs = append(errs, fmt.Sprintf("shading.smoothness_remap_max: must be between 0 and 1, got %g", c.Shading.SmoothnessRemapMax))
	}
	if c.Shading.EmissiveIntensity < 0 {
		errs = append(errs, fmt.Sprintf("shading.emissive_intensity: must not be negative, got %g", c.Shading.EmissiveIntensity))
	}
	if n := len(c.Shading.EmissiveColor); n != 4 {
		errs = append(errs, fmt.Sprintf("shading.emissive_color: must have 4 components (RGBA), got %d", n))
	}

	if c.Events.Buffer < 0 {
		errs = append(errs, fmt.Sprintf("events.buffer: must not be negative, got %d", c.Events.Buffer))
	}
	if c.Events.RetainDays < 0 {
		errs = append(errs, fmt.Sprintf("events.retain_days: must not be negative, got %d", c.Events.RetainDays))
	}

	return errs
}

// validateExt checks an import extension against the one format the asset
// database can import for it.
func validateExt(key, ext, want string) []string {
	if strings.Contains(ext, ".") {
		return []string{fmt.Sprintf("%s: give the extension without a dot, got %q", key, ext)}
	}
	if !strings.EqualFold(ext, want) {
		return []string{fmt.Sprintf("%s: the asset database only imports %q files, got %q", key, want, ext)}
	}
	return nil
}
