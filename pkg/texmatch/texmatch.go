// Package texmatch implements the filename convention that pairs loose
// texture files with material texture slots.
//
// A texture belongs to material M in role R when its stem ends with
// exactly "M_R". Matching is case-sensitive.
package texmatch

import "fmt"

// Role is the slot a texture is meant for, encoded as a filename suffix.
type Role string

const (
	RoleBaseColor Role = "BaseColor"
	RoleMetallic  Role = "Metallic"
	RoleNormal    Role = "Normal"
	RoleEmission  Role = "Emission"
)

// Roles lists the roles in the order they are resolved for a material.
var Roles = []Role{RoleBaseColor, RoleMetallic, RoleNormal, RoleEmission}

// Slot returns the material property a texture of this role binds to.
func (r Role) Slot() string {
	switch r {
	case RoleBaseColor:
		return "_BaseColorMap"
	case RoleMetallic:
		return "_MaskMap"
	case RoleNormal:
		return "_NormalMap"
	case RoleEmission:
		return "_EmissiveColorMap"
	default:
		return ""
	}
}

// ParseRole converts a role name to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown texture role %q", s)
}

// Suffix returns the stem suffix that identifies materialName in role r.
func Suffix(materialName string, r Role) string {
	return materialName + "_" + string(r)
}

// Matches reports whether a texture stem belongs to materialName in role r.
func Matches(stem, materialName string, r Role) bool {
	suffix := Suffix(materialName, r)
	return len(stem) >= len(suffix) && stem[len(stem)-len(suffix):] == suffix
}
