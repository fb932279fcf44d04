package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/substance/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate a configuration file",
	Long:  "Validates TOML syntax, field values, and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, cfg)
		return nil
	}
	printConfigSummary(out, cfg)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Project:    %s (models in %s)\n", cfg.Project.Root, cfg.ModelsPath())
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database.Path)
	fmt.Fprintf(w, "  Log level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "  Import:     .%s + .%s\n", cfg.Import.GeometryExt, cfg.Import.MaterialDefExt)
	s := cfg.Shading
	fmt.Fprintf(w, "  Shading:    smoothness remap %.2f, normal scale %.2f, emission %.1f %v\n",
		s.SmoothnessRemapMax, s.NormalScale, s.EmissiveIntensity, s.EmissiveColor)
	retain := "forever"
	if cfg.Events.RetainDays > 0 {
		retain = fmt.Sprintf("%d days", cfg.Events.RetainDays)
	}
	fmt.Fprintf(w, "  Events:     buffer %d, kept %s\n", cfg.Events.Buffer, retain)
}
