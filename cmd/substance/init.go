package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vmunix/substance/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long: `Write a starter config file (default ./substance.toml).

With --project the config points at that project directory and its Assets
folder is created. Otherwise the project root comes from $SUBSTANCE_PROJECT
or the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("project", "", "Project directory containing Assets/")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	projectDir, _ := cmd.Flags().GetString("project")

	path := "substance.toml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if projectDir == "" {
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	} else {
		abs, err := filepath.Abs(projectDir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Join(abs, "Assets"), 0755); err != nil {
			return fmt.Errorf("create Assets folder: %w", err)
		}
		if err := config.ForProject(abs).Write(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
