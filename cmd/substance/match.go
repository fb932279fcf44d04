package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/substance/internal/importer"
	"github.com/vmunix/substance/pkg/texmatch"
)

var matchCmd = &cobra.Command{
	Use:   "match <dir> <material>",
	Short: "Show which textures would bind to a material",
	Long:  "Scans dir the way import does and lists the file each texture role would bind. Nothing is copied.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchCmd,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().StringSlice("role", nil, "Only show these roles (BaseColor, Metallic, Normal, Emission)")
}

// roleMatch is one line of match output.
type roleMatch struct {
	Role    texmatch.Role `json:"role"`
	Slot    string        `json:"slot"`
	File    string        `json:"file,omitempty"`
	Closest string        `json:"closest,omitempty"`
	Score   float64       `json:"score,omitempty"`
}

// matchRoles resolves roles for material in dir. An empty roles means all.
func matchRoles(dir, material string, roles []texmatch.Role) ([]roleMatch, error) {
	if len(roles) == 0 {
		roles = texmatch.Roles
	}
	var out []roleMatch
	for _, role := range roles {
		m := roleMatch{Role: role, Slot: role.Slot()}
		file, stems, err := importer.FindTexture(dir, material, role)
		if err != nil {
			return nil, err
		}
		m.File = file
		if file == "" {
			if s, ok := texmatch.Suggest(material, role, stems); ok {
				m.Closest, m.Score = s.Stem, s.Score
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func runMatchCmd(cmd *cobra.Command, args []string) error {
	names, _ := cmd.Flags().GetStringSlice("role")
	var roles []texmatch.Role
	for _, name := range names {
		role, err := texmatch.ParseRole(name)
		if err != nil {
			return err
		}
		roles = append(roles, role)
	}

	matches, err := matchRoles(args[0], args[1], roles)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, matches)
		return nil
	}

	fmt.Fprintf(out, "  %-10s %-18s %s\n", "ROLE", "SLOT", "FILE")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))
	for _, m := range matches {
		file := m.File
		if file == "" {
			file = "-"
			if m.Closest != "" {
				file = fmt.Sprintf("- (closest: %s, %.2f)", m.Closest, m.Score)
			}
		}
		fmt.Fprintf(out, "  %-10s %-18s %s\n", m.Role, m.Slot, file)
	}
	return nil
}
