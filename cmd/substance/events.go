package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/substance/internal/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent import events",
	RunE:  runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}

func runEventsCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	p, err := openProject(cmd.ErrOrStderr(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	recent, err := events.NewEventLog(p.db).Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, recent)
		return nil
	}

	if len(recent) == 0 {
		fmt.Fprintln(out, "No events")
		return nil
	}

	registry := events.DefaultRegistry()

	fmt.Fprintf(out, "Recent Events (%d):\n\n", len(recent))
	fmt.Fprintf(out, "  %-12s %-28s %-40s %s\n", "TIME", "TYPE", "ENTITY", "DETAIL")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 100))

	for _, raw := range recent {
		entity := fmt.Sprintf("%s/%s", raw.EntityType, raw.EntityKey)
		detail := ""
		if e, err := registry.Unmarshal(raw); err == nil {
			detail = describe(e)
		}
		fmt.Fprintf(out, "  %-12s %-28s %-40s %s\n", formatTimeAgo(raw.OccurredAt), raw.EventType, entity, detail)
	}
	return nil
}

// describe summarizes an event's payload in one line.
func describe(e events.Event) string {
	switch ev := e.(type) {
	case *events.ImportStarted:
		return ev.SourcePath
	case *events.FoldersProvisioned:
		return strings.Join(ev.Created, ", ")
	case *events.MaterialExtracted:
		return ev.DestPath
	case *events.ExtractFailed:
		return ev.Reason
	case *events.TextureBound:
		return ev.TexturePath + " -> " + ev.Slot
	case *events.MaterialBound:
		if len(ev.Bound) == 0 {
			return "no textures"
		}
		return strings.Join(ev.Bound, ", ")
	case *events.ImportCompleted:
		return fmt.Sprintf("%d materials, %d textures, %d extract errors", ev.Materials, ev.Textures, ev.ExtractErrors)
	case *events.ImportFailed:
		return ev.Stage + ": " + ev.Reason
	default:
		return ""
	}
}

func formatTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
