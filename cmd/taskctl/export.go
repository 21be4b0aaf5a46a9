package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskwarrior_web/internal/config"
	"taskwarrior_web/internal/logger"
	"taskwarrior_web/internal/service"
	"taskwarrior_web/internal/taskwarrior"
	"taskwarrior_web/internal/view"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run the task export pipeline once and print the result",
		Long: `Runs "task status:pending export" and prints one of:
  raw   the exported records unchanged (like GET /tasks)
  json  enriched tasks in export order (like GET /gpt/tasks)
  html  enriched tasks by urgency (like GET /gpt/html/tasks)`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "json", "Output format (raw, json, html)")
	cmd.Flags().String("task-bin", "", "Export executable (default $TASK_BIN or task)")
	cmd.Flags().Duration("timeout", 0, "Export timeout (default $TASK_EXPORT_TIMEOUT_SECONDS or 5s)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger.InitWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)

	format, _ := cmd.Flags().GetString("format")
	bin, _ := cmd.Flags().GetString("task-bin")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if bin == "" {
		bin = cfg.TaskBin
	}
	if timeout <= 0 {
		timeout = cfg.ExportTimeout
	}

	svc := service.NewTaskService(taskwarrior.NewRunner(bin, timeout))
	return writeExport(cmd, svc, format, cmd.OutOrStdout())
}

func writeExport(cmd *cobra.Command, svc *service.TaskService, format string, w io.Writer) error {
	ctx := cmd.Context()

	switch format {
	case "raw":
		records, err := svc.RawRecords(ctx)
		if err != nil {
			return err
		}
		return writeJSON(w, records)
	case "json":
		tasks, err := svc.Enriched(ctx)
		if err != nil {
			return err
		}
		return writeJSON(w, tasks)
	case "html":
		tasks, err := svc.EnrichedByUrgency(ctx)
		if err != nil {
			return err
		}
		return view.Render(w, tasks)
	default:
		return fmt.Errorf("unknown format %q (want raw, json or html)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
