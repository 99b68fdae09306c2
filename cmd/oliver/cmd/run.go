package cmd

import (
	"fmt"
	"os"

	"github.com/maxjmartin/Olly/internal/compiler"
	"github.com/maxjmartin/Olly/internal/eval"
	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/maxjmartin/Olly/internal/ollog"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Oliver file or expression",
	Long: `Execute an Oliver program from a file or inline expression and
print the resulting value stack.

Examples:
  oliver run script.olr
  oliver run -e "let x = '5' STACK"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	log := ollog.Discard()
	if verbose {
		log = ollog.New(os.Stderr, true)
	}
	log.Stage("lex", "file", filename)

	tokens := lexer.Lex(input)
	log.Stage("compile", "tokens", len(tokens))

	exp := compiler.Compile(tokens)

	cfg := loadConfig()
	m := eval.New(cfg.Options(func(s string) { fmt.Print(s) })...)

	result := m.Run(exp)
	log.Stage("done")

	fmt.Println(result.String())
	return nil
}
