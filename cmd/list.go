package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/ui/layout"
	"github.com/hrcore/competency/internal/view"
)

// addListFlags adds the search, filter and sort flags shared by every list
// command.
func addListFlags(c *cobra.Command) {
	c.Flags().String("search", "", "Case-insensitive text search over the searchable fields")
	c.Flags().StringArray("filter", nil, "Exact-match filter as field=value (repeatable)")
	c.Flags().String("sort", "", "Field to sort by")
	c.Flags().Bool("desc", false, "Sort descending")
	c.Flags().Int("limit", 0, "Show at most this many rows (0 = all)")
	c.Flags().Bool("json", false, "Print rows as JSON")
}

// listCommand builds a "list" subcommand for the source returned by src.
func listCommand[T view.Entity](short string, src func(cmd *cobra.Command, svc *competency.Service) competency.Source[T]) *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, src(cmd, envFrom(cmd).Service))
		},
	}
	addListFlags(c)
	return c
}

// runList fetches src through the shared cache and prints the derived view
// of the items that pass every keep func. A failed refresh over cached data
// prints the cached rows with a warning.
func runList[T view.Entity](cmd *cobra.Command, src competency.Source[T], keep ...func(T) bool) error {
	env := envFrom(cmd)
	snap, err := collection.Fetch(cmd.Context(), env.Cache, src.Key, src.Fetch)
	if err != nil {
		if !snap.HasData() {
			return fmt.Errorf("fetch %s: %w", src.Name, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: showing cached %s from %s: %v\n",
			src.Name, snap.FetchedAt.Local().Format("2006-01-02 15:04"), err)
	}

	items := snap.Items
	if len(keep) > 0 {
		items = make([]T, 0, len(snap.Items))
	next:
		for _, it := range snap.Items {
			for _, k := range keep {
				if !k(it) {
					continue next
				}
			}
			items = append(items, it)
		}
	}

	rows, err := deriveRows(cmd, src, items)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, rows)
	}
	if len(rows) == 0 {
		fmt.Fprintf(out, "No %s found.\n", src.Name)
		return nil
	}
	printTable(out, src.Layout, rows)
	if len(rows) != len(items) {
		fmt.Fprintf(out, "\n%d of %d %s\n", len(rows), len(items), src.Name)
	}
	return nil
}

// deriveRows applies the list flags to items.
func deriveRows[T view.Entity](cmd *cobra.Command, src competency.Source[T], items []T) ([]T, error) {
	flags := cmd.Flags()
	search, _ := flags.GetString("search")
	filterArgs, _ := flags.GetStringArray("filter")
	sortKey, _ := flags.GetString("sort")
	desc, _ := flags.GetBool("desc")
	limit, _ := flags.GetInt("limit")

	filters, err := view.ParseFilters(items, filterArgs)
	if err != nil {
		return nil, err
	}

	cfg := src.View
	if sortKey != "" {
		cfg.SortKey = sortKey
		cfg.SortDirection = view.Asc
	}
	if desc {
		if cfg.SortKey == "" {
			return nil, fmt.Errorf("--desc needs a sort field")
		}
		cfg.SortDirection = view.Desc
	}

	rows := view.Derive(items, view.Predicates{SearchText: search, EqualityFilters: filters}, cfg)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// printTable writes rows as fixed-width columns under a bold header.
func printTable[T view.Entity](w io.Writer, l view.Layout, rows []T) {
	widths := l.Widths()
	width := 0
	for _, n := range widths {
		width += n + 2
	}
	color.New(color.Bold).Fprintln(w, layout.Row(l.Header(), widths))
	fmt.Fprintln(w, strings.Repeat("─", max(width-2, 0)))
	for _, r := range rows {
		fmt.Fprintln(w, layout.Row(l.Cells(r), widths))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
