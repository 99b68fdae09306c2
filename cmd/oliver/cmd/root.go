// Package cmd implements Oliver's CLI surface, grounded on the teacher's
// cmd/dwscript/cmd (spf13/cobra commands over the same lex/run/version
// shape, adapted to Oliver's three-stage pipeline and its plain_op result
// stack instead of an AST/unit-loader pipeline).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "oliver",
	Short: "Oliver interpreter",
	Long: `oliver runs programs written in Oliver, a small dynamically typed,
expression-oriented language with closures, fuzzy booleans, and
arbitrary-precision numbers.

A program is lexed into a flat token vector, compiled into a single
postfix expression tree, then executed by a three-stack evaluator.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (stack_limit, decimal_scale, rounding_mode)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
