package cmd

import (
	"fmt"

	"github.com/maxjmartin/Olly/internal/compiler"
	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile an Oliver file or expression to its postfix expression tree",
	Long: `Run the lexer and compiler over a program and print the resulting
postfix expression tree, without evaluating it.

Examples:
  oliver compile script.olr
  oliver compile -e "let x = '1' + '2'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline code instead of reading from file")
}

func compileScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Compiling: %s\n", filename)
	}

	tokens := lexer.Lex(input)
	exp := compiler.Compile(tokens)

	fmt.Println(exp.String())
	return nil
}
