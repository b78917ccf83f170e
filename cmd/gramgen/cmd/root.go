package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	profilePath string
	seed        int64
)

var rootCmd = &cobra.Command{
	Use:   "gramgen",
	Short: "Grammar-based stochastic text generator",
	Long: `gramgen compiles BNF-like grammar files into rule tables and expands
them into random but syntactically valid text: plain sentences, SQL
statements, code-like snippets.

Commands:
  generate  - expand a grammar file into random samples
  rules     - pretty-print the compiled rule table
  example   - write a bundled example grammar file
  schema    - demo: schema-derived DDL and synthetic rows`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Generation profile file (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-seeded)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
