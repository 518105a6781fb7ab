package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hrcore/competency/internal/domain"
)

var interventionsCmd = &cobra.Command{
	Use:   "interventions",
	Short: "Development activities inside a path",
}

var interventionsListCmd = &cobra.Command{
	Use:   "list <path-id>",
	Short: "List a path's interventions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, envFrom(cmd).Service.InterventionsSource(args[0]))
	},
}

var interventionsAddCmd = &cobra.Command{
	Use:   "add <path-id>",
	Short: "Plan an intervention inside a path",
	Long: `Plan an intervention inside a path. Its dates must fall within the
path's dates. Without --end the intervention lasts one day.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := envFrom(cmd).Service
		d := domain.InterventionDraft{PathID: args[0], Status: domain.InterventionPlanned}
		if err := applyInterventionFlags(cmd.Flags(), svc.Location(), &d); err != nil {
			return err
		}
		iv, err := svc.CreateIntervention(cmd.Context(), d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added intervention %s (%s).\n", iv.ID, iv.Interval())
		return nil
	},
}

var interventionsUpdateCmd = &cobra.Command{
	Use:   "update <path-id> <intervention-id>",
	Short: "Change an intervention",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := envFrom(cmd).Service
		cur, err := svc.Intervention(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		d := domain.DraftOf(cur)
		if err := applyInterventionFlags(cmd.Flags(), svc.Location(), &d); err != nil {
			return err
		}
		iv, err := svc.UpdateIntervention(cmd.Context(), args[1], d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated intervention %s (%s, %s).\n", iv.ID, iv.Status, iv.Interval())
		return nil
	},
}

var interventionsDeleteCmd = &cobra.Command{
	Use:   "delete <path-id> <intervention-id>",
	Short: "Remove an intervention",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := envFrom(cmd).Service.DeleteIntervention(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted intervention %s.\n", args[1])
		return nil
	},
}

func addInterventionFlags(fs *pflag.FlagSet) {
	fs.String("title", "", "Intervention title")
	fs.String("type", "", "Type: training, course, mentoring, project, reading, coaching")
	fs.String("status", "", "Status: planned, in_progress, completed, cancelled")
	fs.String("provider", "", "Provider or mentor")
	fs.String("start", "", "Start date (YYYY-MM-DD)")
	fs.String("end", "", "End date (YYYY-MM-DD)")
	fs.String("notes", "", "Notes")
}

// applyInterventionFlags copies the explicitly set flags onto d.
func applyInterventionFlags(fs *pflag.FlagSet, loc *time.Location, d *domain.InterventionDraft) error {
	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	str("title", &d.Title)
	str("provider", &d.Provider)
	str("notes", &d.Notes)
	if fs.Changed("type") {
		t, _ := fs.GetString("type")
		d.Type = domain.InterventionType(t)
	}
	if fs.Changed("status") {
		s, _ := fs.GetString("status")
		d.Status = domain.InterventionStatus(s)
	}
	var err error
	if d.StartDate, err = dayFlag(fs, loc, "start", d.StartDate); err != nil {
		return err
	}
	if d.EndDate, err = dayFlag(fs, loc, "end", d.EndDate); err != nil {
		return err
	}
	return nil
}

func init() {
	addListFlags(interventionsListCmd)

	addInterventionFlags(interventionsAddCmd.Flags())
	addInterventionFlags(interventionsUpdateCmd.Flags())

	interventionsCmd.AddCommand(interventionsListCmd)
	interventionsCmd.AddCommand(interventionsAddCmd)
	interventionsCmd.AddCommand(interventionsUpdateCmd)
	interventionsCmd.AddCommand(interventionsDeleteCmd)
}
