package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gramgen/parser"
)

var (
	ruleNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	ruleSepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	productionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	summaryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var rulesCmd = &cobra.Command{
	Use:   "rules <grammar-file>",
	Short: "Pretty-print the compiled rule table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parser.ParseFile(args[0])
		if err != nil {
			printError("loading grammar", err)

			return err
		}

		total := 0
		for _, name := range g.NonTerminals() {
			for _, p := range g.Alternatives(name) {
				fmt.Printf("%s %s %s\n",
					ruleNameStyle.Render("<"+name+">"),
					ruleSepStyle.Render("::="),
					productionStyle.Render(p.String()))
				total++
			}
		}

		fmt.Println(summaryStyle.Render(
			fmt.Sprintf("%d non-terminals, %d productions", g.Len(), total)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
