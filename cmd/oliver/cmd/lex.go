package cmd

import (
	"fmt"

	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an Oliver file or expression",
	Long: `Tokenize an Oliver program and print the resulting token vector,
for debugging the lexer.

Examples:
  oliver lex script.olr
  oliver lex -e "let x = '5'"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens := lexer.Lex(input)
	for i, tok := range tokens {
		fmt.Printf("%4d: %q\n", i, tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	return nil
}
