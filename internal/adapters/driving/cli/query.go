package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

var queryJSON bool

var execCmd = &cobra.Command{
	Use:   "exec [db] [sql]",
	Short: "Run a statement and print its status code",
	Long: `Runs a statement that returns no rows and prints 1 on success or 0 on
failure. The affected-row count is not reported.`,
	Args: cobra.ExactArgs(2),
	RunE: runExec,
}

var rowCmd = &cobra.Command{
	Use:   "row [db] [sql]",
	Short: "Print the first row of a query",
	Long:  `Prints the first row as tab-separated values. Prints nothing if no row matched.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRow,
}

var scalarCmd = &cobra.Command{
	Use:   "scalar [db] [sql]",
	Short: "Print the first value of the first row",
	Args:  cobra.ExactArgs(2),
	RunE:  runScalar,
}

var columnCmd = &cobra.Command{
	Use:   "column [db] [sql]",
	Short: "Print the first column of every row",
	Args:  cobra.ExactArgs(2),
	RunE:  runColumn,
}

var queryCmd = &cobra.Command{
	Use:   "query [db] [sql]",
	Short: "Print the full result set of a query",
	Long: `Prints the result set as a table on a terminal and as tab-separated
values otherwise. Use --json for machine-readable output: an object with
the ordered "columns" and the "rows" as arrays of strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the result set as JSON")
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(rowCmd)
	rootCmd.AddCommand(scalarCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(queryCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	cmd.Println(databaseService.Execute(cmd.Context(), args[1], args[0]))
	return nil
}

func runRow(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	if row := databaseService.Row(cmd.Context(), args[1], args[0]); row != nil {
		cmd.Println(strings.Join(row, "\t"))
	}
	return nil
}

func runScalar(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	cmd.Println(databaseService.Scalar(cmd.Context(), args[1], args[0]))
	return nil
}

func runColumn(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	for _, v := range databaseService.Column(cmd.Context(), args[1], args[0]) {
		cmd.Println(v)
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}

	result := databaseService.Table(cmd.Context(), args[1], args[0])
	if result == nil {
		return errStatementFailed
	}

	if queryJSON {
		return outputQueryJSON(cmd, result)
	}
	renderTable(cmd, result.ColumnNames(), result.Strings())
	return nil
}

// queryResult is the JSON shape of a result set. Columns and rows keep
// query order, and repeated column names are kept.
type queryResult struct {
	Columns []queryColumn `json:"columns"`
	Rows    [][]string    `json:"rows"`
}

type queryColumn struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

func outputQueryJSON(cmd *cobra.Command, result *domain.Table) error {
	out := queryResult{
		Columns: make([]queryColumn, len(result.Columns)),
		Rows:    result.Strings(),
	}
	for i, c := range result.Columns {
		out.Columns[i] = queryColumn{Name: c.Name, Type: c.Type}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
