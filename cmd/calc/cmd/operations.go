package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/console"
)

// operationExamples holds the help examples per operation name.
var operationExamples = map[string]string{
	"add":      "  calc add 2 3              # 2 + 3 = 5\n  calc add -- -2 -3         # negative numbers follow --",
	"subtract": "  calc subtract 7 3         # 7 - 3 = 4",
	"multiply": "  calc multiply 2 3         # 2 * 3 = 6",
	"divide":   "  calc divide 5 2           # 5 / 2 = 2.5\n  calc divide 6 0           # fails: Cannot divide by zero",
	"even":     "  calc even 4               # 4 is even\n  calc even --json -- -3    # {\"operation\":\"even\",...}",
}

var operationAliases = map[string][]string{
	"subtract": {"sub"},
	"multiply": {"mul"},
	"divide":   {"div"},
}

var operationJSON bool

func init() {
	for _, op := range console.Operations {
		rootCmd.AddCommand(newOperationCmd(op))
	}
}

func newOperationCmd(op console.Operation) *cobra.Command {
	use := op.Name + " <a> <b>"
	short := fmt.Sprintf("%s two numbers", op.Label)
	if op.Operands == 1 {
		use = op.Name + " <n>"
		short = "Check whether a number is even"
	}

	c := &cobra.Command{
		Use:     use,
		Aliases: operationAliases[op.Name],
		Short:   short,
		Long: fmt.Sprintf(`%s without the interactive menu.

Examples:
%s`, short, operationExamples[op.Name]),
		Args: cobra.ExactArgs(op.Operands),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, args)
		},
	}
	c.Flags().BoolVar(&operationJSON, "json", false, "output as JSON")
	return c
}

func runOperation(cmd *cobra.Command, op console.Operation, args []string) error {
	operands := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		operands[i] = n
	}

	value, err := op.Compute(operands...)
	if err != nil {
		logger.Info("operation failed", "operation", op.Name, "operands", operands, "err", err)
		return err
	}
	text, err := op.Eval(operands...)
	if err != nil {
		return err
	}
	logger.Debug("evaluated", "operation", op.Name, "operands", operands, "result", value)

	if operationJSON {
		payload := map[string]any{
			"operation":  op.Name,
			"operands":   operands,
			"result":     value,
			"expression": text,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Result(text))
	return nil
}
