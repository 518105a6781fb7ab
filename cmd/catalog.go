package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
)

var competenciesCmd = &cobra.Command{
	Use:   "competencies",
	Short: "Competency catalogue",
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Employees",
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Job positions and their required competencies",
}

var assessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Competency assessments",
}

var assessmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule an assessment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		employee, _ := flags.GetString("employee")
		assessor, _ := flags.GetString("assessor")
		comp, _ := flags.GetString("competency")
		levelArg, _ := flags.GetString("level")
		whenArg, _ := flags.GetString("date")
		questions, _ := flags.GetStringSlice("questions")

		svc := envFrom(cmd).Service
		d := domain.AssessmentDraft{
			Title:        title,
			EmployeeID:   employee,
			AssessorID:   assessor,
			CompetencyID: comp,
			ScheduledFor: svc.Today(),
			QuestionIDs:  questions,
		}
		if levelArg != "" {
			level, err := domain.ParseLevel(levelArg)
			if err != nil {
				return err
			}
			d.TargetLevel = level
		}
		if whenArg != "" {
			day, err := svc.ParseDay(whenArg)
			if err != nil {
				return err
			}
			d.ScheduledFor = day
		}

		a, err := svc.CreateAssessment(cmd.Context(), d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created assessment %s.\n", a.ID)
		return nil
	},
}

var assessorsCmd = &cobra.Command{
	Use:   "assessors",
	Short: "Assessors and the competencies they cover",
}

var assessorsAssignCmd = &cobra.Command{
	Use:   "assign <assessor-id> <competency-id>",
	Short: "Let an assessor assess a competency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := domain.AssessorAssignment{AssessorID: args[0], CompetencyID: args[1]}
		if err := envFrom(cmd).Service.AssignAssessor(cmd.Context(), a); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s.\n", args[1], args[0])
		return nil
	},
}

var assessorsRemoveCmd = &cobra.Command{
	Use:   "remove <assessor-id> <competency-id>",
	Short: "Remove a competency from an assessor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := domain.AssessorAssignment{AssessorID: args[0], CompetencyID: args[1]}
		if err := envFrom(cmd).Service.RemoveAssessor(cmd.Context(), a); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s.\n", args[1], args[0])
		return nil
	},
}

func init() {
	competenciesCmd.AddCommand(listCommand("List competencies",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.Competency] {
			return svc.CompetenciesSource()
		}))

	employeesCmd.AddCommand(listCommand("List employees",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.Employee] {
			return svc.EmployeesSource()
		}))

	jobsCmd.AddCommand(listCommand("List jobs",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.Job] {
			return svc.JobsSource()
		}))

	assessmentsCmd.AddCommand(listCommand("List assessments",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.Assessment] {
			return svc.AssessmentsSource()
		}))
	assessmentsCreateCmd.Flags().String("title", "", "Assessment title")
	assessmentsCreateCmd.Flags().String("employee", "", "Employee ID")
	assessmentsCreateCmd.Flags().String("assessor", "", "Assessor ID")
	assessmentsCreateCmd.Flags().String("competency", "", "Competency ID")
	assessmentsCreateCmd.Flags().String("level", "", "Target level: BASIC, INTERMEDIATE, ADVANCED, EXPERT")
	assessmentsCreateCmd.Flags().String("date", "", "Scheduled date, YYYY-MM-DD (default today)")
	assessmentsCreateCmd.Flags().StringSlice("questions", nil, "Question IDs to include (comma-separated)")
	assessmentsCmd.AddCommand(assessmentsCreateCmd)

	assessorsCmd.AddCommand(listCommand("List assessors",
		func(_ *cobra.Command, svc *competency.Service) competency.Source[domain.Assessor] {
			return svc.AssessorsSource()
		}))
	assessorsCmd.AddCommand(assessorsAssignCmd)
	assessorsCmd.AddCommand(assessorsRemoveCmd)
}
