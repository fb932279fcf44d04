// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Import   ImportConfig   `toml:"import"`
	Shading  ShadingConfig  `toml:"shading"`
	Events   EventsConfig   `toml:"events"`
}

type ProjectConfig struct {
	// Root is the project directory that contains Assets/.
	Root string `toml:"root"`
	// ModelsDir is the folder under Assets/ that receives imported models.
	ModelsDir string `toml:"models_dir"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type ImportConfig struct {
	// GeometryExt and MaterialDefExt name the source file pair. The asset
	// database imports Wavefront files only, so they may differ from
	// "obj" and "mtl" in case alone.
	GeometryExt    string `toml:"geometry_ext"`
	MaterialDefExt string `toml:"material_def_ext"`
}

// ShadingConfig holds the parameters written to every bound material.
type ShadingConfig struct {
	SmoothnessRemapMax float64   `toml:"smoothness_remap_max"`
	NormalScale        float64   `toml:"normal_scale"`
	EmissiveIntensity  float64   `toml:"emissive_intensity"`
	EmissiveColor      []float64 `toml:"emissive_color"`
}

// EventsConfig controls event delivery during an import and the event log.
type EventsConfig struct {
	// Buffer is how many events a watcher may fall behind before
	// further events are dropped for it.
	Buffer int `toml:"buffer"`
	// RetainDays prunes logged events older than this many days before
	// each import. Zero keeps everything.
	RetainDays int `toml:"retain_days"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return ForProject(".")
}

// ForProject returns the default configuration for the project at root.
func ForProject(root string) *Config {
	cfg := &Config{Project: ProjectConfig{Root: root}}
	cfg.applyDefaults(nil)
	return cfg
}

// applyDefaults fills unset fields. Numeric shading keys are unset only when
// isDefined reports them absent from the file, so an explicit 0 is kept.
// A nil isDefined treats every key as absent.
func (c *Config) applyDefaults(isDefined func(key ...string) bool) {
	if isDefined == nil {
		isDefined = func(...string) bool { return false }
	}

	if c.Project.Root == "" {
		c.Project.Root = "."
	}
	if c.Project.ModelsDir == "" {
		c.Project.ModelsDir = "Models"
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.Project.Root, "Library", "assets.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Import.GeometryExt == "" {
		c.Import.GeometryExt = "obj"
	}
	if c.Import.MaterialDefExt == "" {
		c.Import.MaterialDefExt = "mtl"
	}
	if !isDefined("shading", "smoothness_remap_max") {
		c.Shading.SmoothnessRemapMax = 0.4
	}
	if !isDefined("shading", "normal_scale") {
		c.Shading.NormalScale = 1.2
	}
	if !isDefined("shading", "emissive_intensity") {
		c.Shading.EmissiveIntensity = 40.0
	}
	if !isDefined("shading", "emissive_color") {
		c.Shading.EmissiveColor = []float64{1, 0, 0, 1}
	}
	if c.Events.Buffer == 0 {
		c.Events.Buffer = 64
	}
}

// Load reads and parses the configuration file.
// Returns a *ConfigError when environment variables are missing or
// validation fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults(md.IsDefined)

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} with environment variable values.
// ${VAR:-default} uses default when VAR is unset or empty. Unresolved
// variables are left in place and returned as missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := groups[1], groups[2] != "", groups[3]

		if value, ok := os.LookupEnv(name); ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, name)
		return match
	})
	return out, missing
}

// EventRetention is the age past which logged events are pruned; zero
// keeps everything.
func (c *Config) EventRetention() time.Duration {
	return time.Duration(c.Events.RetainDays) * 24 * time.Hour
}

// ModelsPath is the virtual folder that receives imported models.
func (c *Config) ModelsPath() string {
	return "Assets/" + strings.Trim(c.Project.ModelsDir, "/")
}
