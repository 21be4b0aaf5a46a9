package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskwarrior_web/internal/config"
)

// defaultSmokeTimeout bounds each request; the server gives up on an export well before.
const defaultSmokeTimeout = 10 * time.Second

var smokePaths = []string{"/tasks", "/gpt/tasks", "/gpt/html/tasks"}

func smokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Call every task endpoint of a running server and report status codes",
		Args:  cobra.NoArgs,
		RunE:  runSmoke,
	}

	cmd.Flags().String("url", "", "Server base URL (default http://localhost:$APP_PORT)")
	cmd.Flags().Duration("timeout", defaultSmokeTimeout, "Per-request timeout")

	return cmd
}

func runSmoke(cmd *cobra.Command, args []string) error {
	base, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if base == "" {
		base = "http://localhost:" + config.Load().AppPort
	}
	base = strings.TrimRight(base, "/")

	client := &http.Client{Timeout: timeout}
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range smokePaths {
		req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, base+path, nil)
		if err != nil {
			return err
		}
		res, err := client.Do(req)
		if err != nil {
			fmt.Fprintf(out, "FAIL %-16s %v\n", path, err)
			failed++
			continue
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != http.StatusOK {
			fmt.Fprintf(out, "FAIL %-16s %d %s\n", path, res.StatusCode, strings.TrimSpace(string(body)))
			failed++
			continue
		}
		fmt.Fprintf(out, "OK   %-16s %d (%d bytes)\n", path, res.StatusCode, len(body))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d endpoints failed", failed, len(smokePaths))
	}
	return nil
}
