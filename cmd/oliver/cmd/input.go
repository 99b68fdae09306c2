package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/maxjmartin/Olly/internal/config"
	"github.com/maxjmartin/Olly/internal/source"
)

var evalExpr string

// readInput resolves the -e flag against a positional file argument, the
// way the teacher's lex/run commands share one input-resolution helper.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		if _, statErr := os.Stat(args[0]); statErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], statErr)
		}
		return drain(source.Open(args[0])), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

// drain reads a source.Reader to exhaustion and returns what it produced,
// the way the lexer consumes one but collected into a single string up
// front rather than streamed (lex/compile/run all want the whole program
// before they start, unlike text_reader's original streaming consumer).
func drain(r *source.Reader) string {
	var b strings.Builder
	for r.Is() {
		b.WriteRune(r.Next())
	}
	return b.String()
}

func loadConfig() config.Config {
	if configPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError("loading config %s: %v", configPath, err)
	}
	return cfg
}
