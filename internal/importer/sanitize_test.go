// internal/importer/sanitize_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAssetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Seat", "Seat"},
		{"spaces kept", "Seat Cushion", "Seat Cushion"},
		{"path separators", "Chair/Seat\\Top", "Chair_Seat_Top"},
		{"parent reference", "..", "Material"},
		{"leading dots", "..Seat", "Seat"},
		{"illegal chars", `Seat:"Top"?`, "Seat__Top__"},
		{"control chars", "Seat\x00\n", "Seat__"},
		{"empty", "", "Material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeAssetName(tt.input), "SanitizeAssetName(%q)", tt.input)
		})
	}
}

func TestValidatePath(t *testing.T) {
	root := "/project/Assets/Models"

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"model folder", "/project/Assets/Models/Chair", false},
		{"nested file", "/project/Assets/Models/Chair/Textures/Seat_BaseColor.png", false},
		{"root itself", "/project/Assets/Models", false},
		{"parent escape", "/project/Assets/Models/../Scripts/x.cs", true},
		{"sibling prefix", "/project/Assets/ModelsOld/Chair", true},
		{"outside", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path, root)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathTraversal)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
