package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hrcore/competency/internal/bulk"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/domain"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Assessment question bank",
}

var questionsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Create questions from a CSV file",
	Long: `Create questions from a CSV file. The header must name competency_id,
level, kind and text; options, correct, answer, rubric and max_words are
read for the kinds that use them. Use "-" to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		im, err := envFrom(cmd).Importer()
		if err != nil {
			return err
		}

		var src io.Reader = cmd.InOrStdin()
		name := "stdin"
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			src, name = f, filepath.Base(args[0])
		}

		rep, err := im.Import(cmd.Context(), name, src)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), rep)
		if !rep.OK() {
			return fmt.Errorf("%d of %d rows not imported", rep.Invalid+rep.Failed, len(rep.Rows))
		}
		return nil
	},
}

var questionsWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Import every CSV file dropped into an inbox directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		im, err := env.Importer()
		if err != nil {
			return err
		}
		dir := env.Config.Import.Inbox
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			return errors.New("no inbox directory: pass one or set import.inbox")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", dir)
		err = im.Watch(cmd.Context(), dir, bulk.WatchOptions{
			OnReport: func(rep bulk.Report) { printReport(out, rep) },
		})
		if cmd.Context().Err() != nil && errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

var questionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete questions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := envFrom(cmd).Service.DeleteQuestions(cmd.Context(), args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Deleted %d question(s).\n", len(res.Deleted))
		for _, f := range res.Failed {
			fmt.Fprintf(out, "  %s %s: %s\n", color.RedString("✗"), f.ID, f.Message)
		}
		if len(res.Failed) > 0 {
			return fmt.Errorf("%d question(s) not deleted", len(res.Failed))
		}
		return nil
	},
}

func printReport(w io.Writer, rep bulk.Report) {
	fmt.Fprintln(w, rep.String())
	for _, r := range rep.Rows {
		switch r.Outcome {
		case bulk.Created:
			continue
		case bulk.Invalid:
			fmt.Fprintf(w, "  %s line %d: %s\n", color.YellowString("!"), r.Line, r.Message)
		default:
			fmt.Fprintf(w, "  %s line %d: %s\n", color.RedString("✗"), r.Line, r.Message)
		}
	}
}

func init() {
	list := listCommand("List questions",
		func(cmd *cobra.Command, svc *competency.Service) competency.Source[domain.Question] {
			id, _ := cmd.Flags().GetString("competency")
			return svc.QuestionsSource(id)
		})
	list.Flags().String("competency", "", "Only questions for this competency ID")
	questionsCmd.AddCommand(list)
	questionsCmd.AddCommand(questionsImportCmd)
	questionsCmd.AddCommand(questionsWatchCmd)
	questionsCmd.AddCommand(questionsDeleteCmd)
}
