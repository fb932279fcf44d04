package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/substance/internal/assetdb"
	"github.com/vmunix/substance/internal/events"
	"github.com/vmunix/substance/internal/importer"
	"github.com/vmunix/substance/internal/server"
)

var importCmd = &cobra.Command{
	Use:   "import [geometry-file]",
	Short: "Import a model export",
	Long: `Import a geometry file and its sibling material definition file.

Without an argument you are prompted for the file; an empty answer does nothing.
Textures are searched for below the geometry file's folder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// stdinPicker asks for a file path on in.
func stdinPicker(in io.Reader, out io.Writer) assetdb.Picker {
	reader := bufio.NewReader(in)
	return assetdb.PickerFunc(func(_ context.Context, title string, extensions []string) (string, error) {
		label := title
		if len(extensions) > 0 {
			label += " (." + strings.Join(extensions, ", .") + ")"
		}
		fmt.Fprintf(out, "%s: ", label)

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(input), nil
	})
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p, err := openProject(cmd.ErrOrStderr(), stdinPicker(cmd.InOrStdin(), out))
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	var geometry string
	if len(args) > 0 {
		if geometry, err = filepath.Abs(args[0]); err != nil {
			return err
		}
		geometry = filepath.ToSlash(geometry)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := server.NewRunner(p.db, p.runnerConfig(), p.logger)
	defer func() { _ = runner.Close() }()
	imp := importer.New(p.assets, p.importerConfig(), runner.Bus(), p.logger.With("component", "importer"))

	var handle func(events.Event)
	if !jsonOutput {
		handle = func(e events.Event) { printEvent(out, e) }
	}

	result, err := runner.Run(ctx, imp, geometry, handle)
	if errors.Is(err, importer.ErrNoSelection) {
		fmt.Fprintln(out, "No file selected")
		return nil
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(out, result)
		return nil
	}
	printImportResult(out, result)
	return nil
}

func printEvent(w io.Writer, e events.Event) {
	switch ev := e.(type) {
	case *events.FoldersProvisioned:
		for _, f := range ev.Created {
			fmt.Fprintf(w, "  created  %s\n", f)
		}
	case *events.MaterialExtracted:
		fmt.Fprintf(w, "  material %s\n", ev.DestPath)
	case *events.ExtractFailed:
		fmt.Fprintf(w, "  failed   %s: %s\n", ev.EntityKey(), ev.Reason)
	case *events.TextureBound:
		fmt.Fprintf(w, "  bound    %s -> %s\n", ev.TexturePath, ev.Slot)
	}
}

func printImportResult(w io.Writer, r *importer.ImportResult) {
	fmt.Fprintf(w, "\nImported %s into %s\n", r.ModelName, r.ModelFolder)
	for _, m := range r.Materials {
		var roles []string
		for _, a := range m.Bound() {
			roles = append(roles, string(a.Role))
		}
		bound := "no textures"
		if len(roles) > 0 {
			bound = strings.Join(roles, ", ")
		}
		fmt.Fprintf(w, "  %-24s %s\n", m.MaterialName, bound)
	}
	if r.ExtractErrors > 0 {
		fmt.Fprintf(w, "%d material(s) could not be extracted\n", r.ExtractErrors)
	}
}
