package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/grader"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <score>...",
	Short: "Convert percentage scores to letter grades",
	Long: `Convert percentage scores (0-100) to letter grades.

Thresholds are inclusive lower bounds: 90 A, 80 B, 70 C, 60 D, below 60 F.
Any score outside 0-100 is rejected and nothing is printed.

Examples:
  calc grade 88             # 88: B
  calc grade 90 59          # 90: A, 59: F
  calc grade --scale        # print the grading scale
  calc grade --json 72      # [{"score":72,"grade":"C"}]`,
	RunE: runGrade,
}

var (
	gradeJSON  bool
	gradeScale bool
)

func init() {
	gradeCmd.Flags().BoolVar(&gradeJSON, "json", false, "output as JSON")
	gradeCmd.Flags().BoolVar(&gradeScale, "scale", false, "print the grading scale")
	rootCmd.AddCommand(gradeCmd)
}

type gradeResult struct {
	Score int    `json:"score"`
	Grade string `json:"grade"`
}

func runGrade(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if gradeScale {
		printScale(cmd)
		if len(args) == 0 {
			return nil
		}
		fmt.Fprintln(out)
	}
	if len(args) == 0 {
		return errors.New("requires at least one score")
	}

	results := make([]gradeResult, 0, len(args))
	for _, arg := range args {
		score, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid score %q", arg)
		}
		letter, err := grader.LetterGradeFor(score)
		if err != nil {
			return err
		}
		results = append(results, gradeResult{Score: score, Grade: letter.String()})
	}
	logger.Debug("graded", "count", len(results))

	if gradeJSON {
		enc := json.NewEncoder(out)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(out, "%d: %s\n", r.Score, renderer.Grade(r.Grade))
	}
	return nil
}

func printScale(cmd *cobra.Command) {
	bands := grader.Bands()
	lines := []string{renderer.Header("Grading scale")}
	upper := grader.MaxScore
	for _, b := range bands {
		lines = append(lines, fmt.Sprintf("%s  %3d-%d", renderer.Grade(b.Grade.String()), b.Min, upper))
		upper = b.Min - 1
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Box(lines))
}
