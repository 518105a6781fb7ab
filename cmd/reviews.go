package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/domain"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Performance reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := envFrom(cmd).Service
		src := svc.ReviewsSource()
		if overdue, _ := cmd.Flags().GetBool("overdue"); overdue {
			today := svc.Today()
			src.Name = "overdue reviews"
			return runList(cmd, src, func(r domain.Review) bool { return r.Overdue(today) })
		}
		return runList(cmd, src)
	},
}

var reviewsRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Ask a reviewer to review an employee",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		employee, _ := flags.GetString("employee")
		reviewer, _ := flags.GetString("reviewer")
		period, _ := flags.GetString("period")
		dueArg, _ := flags.GetString("due")

		svc := envFrom(cmd).Service
		r := domain.ReviewRequest{EmployeeID: employee, ReviewerID: reviewer, Period: period}
		if dueArg != "" {
			due, err := svc.ParseDay(dueArg)
			if err != nil {
				return err
			}
			r.DueDate = due
		}

		review, err := svc.RequestReview(cmd.Context(), r)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Requested review %s (%s).\n", review.ID, review.Period)
		return nil
	},
}

var reviewsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Close a review with a rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, _ := cmd.Flags().GetInt("rating")
		comments, _ := cmd.Flags().GetString("comments")

		c := domain.ReviewCompletion{Rating: rating, Comments: comments}
		review, err := envFrom(cmd).Service.CompleteReview(cmd.Context(), args[0], c)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed review %s with rating %d.\n", review.ID, rating)
		return nil
	},
}

func init() {
	addListFlags(reviewsListCmd)
	reviewsListCmd.Flags().Bool("overdue", false, "Only open reviews past their due date")

	reviewsRequestCmd.Flags().String("employee", "", "Employee ID")
	reviewsRequestCmd.Flags().String("reviewer", "", "Reviewer ID")
	reviewsRequestCmd.Flags().String("period", "", "Review period, e.g. 2024-H1")
	reviewsRequestCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	reviewsCompleteCmd.Flags().Int("rating", 0, fmt.Sprintf("Rating from %d to %d", domain.MinRating, domain.MaxRating))
	reviewsCompleteCmd.Flags().String("comments", "", "Review comments")

	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsRequestCmd)
	reviewsCmd.AddCommand(reviewsCompleteCmd)
}
