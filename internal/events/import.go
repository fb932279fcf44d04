package events

// Event types.
const (
	EventImportStarted      = "import.started"
	EventFoldersProvisioned = "import.folders_provisioned"
	EventMaterialExtracted  = "material.extracted"
	EventExtractFailed      = "material.extract_failed"
	EventTextureBound       = "texture.bound"
	EventMaterialBound      = "material.bound"
	EventImportCompleted    = "import.completed"
	EventImportFailed       = "import.failed"
)

// ImportStarted is emitted when a geometry file has been chosen.
type ImportStarted struct {
	BaseEvent
	SourcePath string `json:"source_path"`
}

// FoldersProvisioned is emitted after the managed folders exist.
type FoldersProvisioned struct {
	BaseEvent
	Created []string `json:"created,omitempty"`
}

// MaterialExtracted is emitted per embedded material written to its own file.
type MaterialExtracted struct {
	BaseEvent
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"`
}

// ExtractFailed is emitted when an embedded material could not be extracted.
type ExtractFailed struct {
	BaseEvent
	SourcePath string `json:"source_path"`
	Reason     string `json:"reason"`
}

// TextureBound is emitted when a texture is assigned to a material slot.
type TextureBound struct {
	BaseEvent
	Role        string `json:"role"`
	Slot        string `json:"slot"`
	TexturePath string `json:"texture_path"`
}

// MaterialBound is emitted after a material's textures and shading
// parameters have been saved.
type MaterialBound struct {
	BaseEvent
	Bound   []string `json:"bound,omitempty"`   // roles that found a texture
	Missing []string `json:"missing,omitempty"` // roles left unbound
}

// ImportCompleted is emitted when the pipeline finished.
type ImportCompleted struct {
	BaseEvent
	Materials     int `json:"materials"`
	Textures      int `json:"textures"`
	ExtractErrors int `json:"extract_errors"`
}

// ImportFailed is emitted when a stage aborted the run.
type ImportFailed struct {
	BaseEvent
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}
