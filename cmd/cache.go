package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/collection"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the offline collection cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the collections saved for offline start",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snaps, err := envFrom(cmd).Store.SnapshotRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(snaps) == 0 {
			fmt.Fprintln(out, "Nothing cached yet.")
			return nil
		}

		fmt.Fprintf(out, "%-40s  %6s  %-19s  %s\n", "Key", "Items", "Fetched", "Age")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, s := range snaps {
			fmt.Fprintf(out, "%-40s  %6d  %-19s  %s\n",
				s.Key,
				s.ItemCount,
				s.FetchedAt.Local().Format("2006-01-02 15:04:05"),
				time.Since(s.FetchedAt).Round(time.Second),
			)
		}
		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete saved collections older than a duration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		age, _ := cmd.Flags().GetDuration("older-than")
		if !cmd.Flags().Changed("older-than") {
			age = env.Config.Cache.MaxAge
		}
		n, err := env.Store.SnapshotRepo().Prune(cmd.Context(), time.Now().Add(-age))
		if err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d snapshot(s).\n", n)
		return nil
	},
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a saved collection and every collection below it",
	Long: `Delete a saved collection and every collection below it, so
"interventions" also removes "interventions/<path-id>". The next read
fetches from the API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		key := strings.Trim(args[0], "/")
		n, err := env.Store.SnapshotRepo().Delete(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		env.Cache.Invalidate(collection.Key(key))
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d snapshot(s).\n", n)
		return nil
	},
}

func init() {
	cachePruneCmd.Flags().Duration("older-than", 0, "Age limit (default cache.max_age)")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePruneCmd)
	cacheCmd.AddCommand(cacheDeleteCmd)
}
