package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/store"
	"github.com/hrcore/competency/internal/ui/layout"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Inspect the HR API request log",
}

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent API requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		endpoint, _ := cmd.Flags().GetString("endpoint")
		failed, _ := cmd.Flags().GetBool("failed")
		since, _ := cmd.Flags().GetDuration("since")

		opts := store.QueryOpts{Limit: limit, Endpoint: endpoint, FailedOnly: failed}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := envFrom(cmd).Store.EventRepo().QueryAPIRequests(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No API requests found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-6s  %-34s  %-6s  %-7s  %-3s  %s\n",
			"ID", "Timestamp", "Method", "Endpoint", "Status", "Ms", "Try", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, e := range events {
			ok := color.GreenString("✓")
			if !e.Success {
				ok = color.RedString("✗")
			}
			status := "-"
			if e.Status > 0 {
				status = strconv.Itoa(e.Status)
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-6s  %-34s  %-6s  %-7d  %-3d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Method,
				layout.Pad(layout.Truncate(e.Endpoint, 34), 34),
				status,
				e.LatencyMs,
				e.Attempt,
				ok,
			)
		}
		return nil
	},
}

var requestsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one API request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		e, err := envFrom(cmd).Store.EventRepo().GetAPIRequest(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if e == nil {
			return fmt.Errorf("request %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:         %d\n", e.ID)
		fmt.Fprintf(out, "Time:       %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Request:    %s\n", e.RequestID)
		fmt.Fprintf(out, "Call:       %s %s\n", e.Method, e.Endpoint)
		fmt.Fprintf(out, "Status:     %d\n", e.Status)
		fmt.Fprintf(out, "Attempt:    %d\n", e.Attempt)
		fmt.Fprintf(out, "Latency:    %dms\n", e.LatencyMs)
		fmt.Fprintf(out, "Success:    %v\n", e.Success)
		if e.APIVersion != "" {
			fmt.Fprintf(out, "API:        %s\n", e.APIVersion)
		}
		if e.ErrorMessage != "" {
			fmt.Fprintf(out, "Error:      %s\n", e.ErrorMessage)
		}
		return nil
	},
}

var requestsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show call counts, failures and latency per endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := envFrom(cmd).Store.EventRepo().UsageByEndpoint(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No API requests recorded yet.")
			return nil
		}

		rule := strings.Repeat("─", 80)
		fmt.Fprintln(out, "Usage by Endpoint")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-6s  %-34s  %6s  %8s  %8s  %8s\n",
			"Method", "Endpoint", "Calls", "Failed", "Avg Ms", "Max Ms")
		fmt.Fprintln(out, rule)

		var calls, failures int
		for _, st := range stats {
			failed := strconv.Itoa(st.Failures)
			if st.Failures > 0 {
				failed = color.RedString("%8d", st.Failures)
			}
			fmt.Fprintf(out, "%-6s  %-34s  %6d  %8s  %8d  %8d\n",
				st.Method, layout.Pad(layout.Truncate(st.Endpoint, 34), 34), st.Calls, failed, st.AvgLatencyMs, st.MaxLatencyMs)
			calls += st.Calls
			failures += st.Failures
		}

		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-6s  %-34s  %6d  %8d\n", "TOTAL", "", calls, failures)
		return nil
	},
}

func init() {
	requestsListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	requestsListCmd.Flags().StringP("endpoint", "e", "", "Only endpoints with this prefix (e.g. /api/questions)")
	requestsListCmd.Flags().Bool("failed", false, "Only failed requests")
	requestsListCmd.Flags().Duration("since", 0, "Only requests newer than this (e.g. 1h)")

	requestsCmd.AddCommand(requestsListCmd)
	requestsCmd.AddCommand(requestsViewCmd)
	requestsCmd.AddCommand(requestsStatsCmd)
}
