package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets [prefix]",
	Short: "List registered assets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAssetsCmd,
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runAssetsCmd(cmd *cobra.Command, args []string) error {
	p, err := openProject(cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	records, err := p.assets.List(prefix)
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, records)
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No assets")
		return nil
	}

	fmt.Fprintf(out, "  %-16s %-8s %s\n", "TYPE", "STATE", "PATH")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))
	for _, r := range records {
		typ := string(r.Type)
		if r.TextureKind != "" && r.TextureKind != "default" {
			typ += "/" + string(r.TextureKind)
		}
		fmt.Fprintf(out, "  %-16s %-8s %s\n", typ, r.State, r.Path)
	}
	return nil
}
