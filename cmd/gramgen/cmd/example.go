package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sqlExampleGrammar is the bundled SQL query grammar. Pairs well with the
// "sql" validator, which repairs the NULL comparisons this grammar can emit.
const sqlExampleGrammar = `# Example SQL query grammar.
# Expand with: gramgen generate example_sql_grammar.txt sql_query 10 --validator sql

<sql_query>   ::= [<select_stmt>]
<sql_query>   ::= [<insert_stmt>]
<sql_query>   ::= [<delete_stmt>]

<select_stmt> ::= ["SELECT", <select_list>, "FROM", <table_name>]
<select_stmt> ::= ["SELECT", <select_list>, "FROM", <table_name>, "WHERE", <condition>]

<insert_stmt> ::= ["INSERT INTO", <table_name>, "(", <column_name>, ")", "VALUES", "(", <value>, ")"]
<delete_stmt> ::= ["DELETE FROM", <table_name>, "WHERE", <condition>]

<select_list> ::= ["*"]
<select_list> ::= [<column_name>]
<select_list> ::= [<column_name>, ",", <column_name>]

<condition>   ::= [<column_name>, <operator>, <value>]
<condition>   ::= [<condition>, "AND", <condition>]

<table_name>  ::= [users]
<table_name>  ::= [orders]
<table_name>  ::= [products]

<column_name> ::= [id]
<column_name> ::= [name]
<column_name> ::= [status]
<column_name> ::= [created_at]

<operator>    ::= ["="]
<operator>    ::= ["!="]
<operator>    ::= ["<"]
<operator>    ::= [">"]

<value>       ::= ["NULL"]
<value>       ::= ["'active'"]
<value>       ::= ["42"]
`

var exampleCmd = &cobra.Command{
	Use:   "example <type> [output]",
	Short: "Write a bundled example grammar file",
	Long:  "Writes an example grammar of the given type (currently: sql).",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]

		path := fmt.Sprintf("example_%s_grammar.txt", kind)
		if len(args) == 2 {
			path = args[1]
		}

		var content string
		switch kind {
		case "sql":
			content = sqlExampleGrammar
		default:
			return fmt.Errorf("unknown grammar type: %s", kind)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			printError("writing example grammar", err)

			return err
		}

		fmt.Printf("Created example %s grammar at: %s\n", kind, path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
