package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Individual development paths",
}

var pathsShowCmd = &cobra.Command{
	Use:   "show <path-id>",
	Short: "Show a path with its interventions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := envFrom(cmd).Service
		details, err := svc.PathDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, details)
		}

		p := details.Path
		color.New(color.Bold).Fprintf(out, "%s  [%s]\n", p.Title, p.Status)
		fmt.Fprintf(out, "%s  ·  %s\n", p.EmployeeName, p.Interval())
		if p.Description != "" {
			fmt.Fprintln(out, p.Description)
		}
		fmt.Fprintln(out)

		if len(details.Interventions) == 0 {
			fmt.Fprintln(out, "No interventions planned.")
			return nil
		}
		src := svc.InterventionsSource(p.ID)
		printTable(out, src.Layout, details.Interventions)

		conflicts := details.Conflicts()
		if len(conflicts) == 0 {
			return nil
		}
		fmt.Fprintf(out, "\n%s\n", color.RedString("%d intervention(s) fall outside the path dates:", len(conflicts)))
		for _, c := range conflicts {
			fmt.Fprintf(out, "  %s %s: %v\n", color.RedString("✗"), c.Intervention.Title, c.Err)
		}
		return nil
	},
}

var pathsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a development path for an employee",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		employee, _ := cmd.Flags().GetString("employee")
		if employee == "" {
			return fmt.Errorf("--employee is required")
		}
		svc := envFrom(cmd).Service
		u := domain.PathUpdate{Status: domain.PathDraft}
		if err := applyPathFlags(cmd.Flags(), svc.Location(), &u); err != nil {
			return err
		}
		p, err := svc.CreatePath(cmd.Context(), employee, u)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created path %s (%s).\n", p.ID, p.Interval())
		return nil
	},
}

var pathsUpdateCmd = &cobra.Command{
	Use:   "update <path-id>",
	Short: "Change a path's title, status or dates",
	Long: `Change a path's title, status or dates. Flags that are not given keep
their current value. Pass --end "" to make the path open-ended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := envFrom(cmd).Service
		p, err := svc.Path(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		u := domain.UpdateOf(p)
		if err := applyPathFlags(cmd.Flags(), svc.Location(), &u); err != nil {
			return err
		}
		p, err = svc.UpdatePath(cmd.Context(), args[0], u)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated path %s (%s).\n", p.ID, p.Interval())
		return nil
	},
}

func addPathFlags(fs *pflag.FlagSet) {
	fs.String("title", "", "Path title")
	fs.String("description", "", "Path description")
	fs.String("status", "", "Status: draft, active, completed")
	fs.String("start", "", "Start date (YYYY-MM-DD)")
	fs.String("end", "", "End date (YYYY-MM-DD)")
}

// applyPathFlags copies the explicitly set path flags onto u.
func applyPathFlags(fs *pflag.FlagSet, loc *time.Location, u *domain.PathUpdate) error {
	if fs.Changed("title") {
		u.Title, _ = fs.GetString("title")
	}
	if fs.Changed("description") {
		u.Description, _ = fs.GetString("description")
	}
	if fs.Changed("status") {
		s, _ := fs.GetString("status")
		u.Status = domain.PathStatus(s)
	}
	var err error
	if u.StartDate, err = dayFlag(fs, loc, "start", u.StartDate); err != nil {
		return err
	}
	if u.EndDate, err = dayFlag(fs, loc, "end", u.EndDate); err != nil {
		return err
	}
	return nil
}

// dayFlag returns the date in flag name, read in loc, when it was set, else
// cur. An empty value clears the date.
func dayFlag(fs *pflag.FlagSet, loc *time.Location, name string, cur schedule.Day) (schedule.Day, error) {
	if !fs.Changed(name) {
		return cur, nil
	}
	v, _ := fs.GetString(name)
	if v == "" {
		return schedule.Day{}, nil
	}
	d, err := schedule.ParseDate(v, loc)
	if err != nil {
		return schedule.Day{}, fmt.Errorf("--%s: %w", name, err)
	}
	return schedule.NewDay(d), nil
}

func init() {
	pathsCmd.AddCommand(listCommand("List development paths",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.DevelopmentPath] {
			return svc.PathsSource()
		}))

	pathsShowCmd.Flags().Bool("json", false, "Print the path as JSON")
	pathsCmd.AddCommand(pathsShowCmd)

	pathsCreateCmd.Flags().String("employee", "", "Employee ID")
	addPathFlags(pathsCreateCmd.Flags())
	pathsCmd.AddCommand(pathsCreateCmd)

	addPathFlags(pathsUpdateCmd.Flags())
	pathsCmd.AddCommand(pathsUpdateCmd)
}
