package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/maxjmartin/Olly/internal/compiler"
	"github.com/maxjmartin/Olly/internal/eval"
	"github.com/maxjmartin/Olly/internal/lexer"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Oliver session",
	Long: `Read a line of Oliver source at a time, compile and run it against a
single long-lived machine, and print the resulting value stack after each
line. Variables defined on one line stay visible on the next, the same
way a top-level script's enclosing scope does.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	m := eval.New(cfg.Options(func(s string) { fmt.Print(s) })...)

	in := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stdout, "oliver repl — ^D to exit")

	for {
		fmt.Fprint(os.Stdout, "> ")
		if !in.Scan() {
			break
		}
		line := in.Text()
		if line == "" {
			continue
		}

		tokens := lexer.Lex(line)
		exp := compiler.Compile(tokens)
		result := m.Run(exp)

		fmt.Fprintln(os.Stdout, result.String())
	}

	if err := in.Err(); err != nil && err != io.EOF {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
