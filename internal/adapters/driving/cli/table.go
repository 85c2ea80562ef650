package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errStatementFailed = errors.New("statement failed (run with --verbose for details)")

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage tables",
	Long:  `Create, drop, and alter tables in a database file.`,
}

var tableCreateCmd = &cobra.Command{
	Use:   "create [db] [sql]",
	Short: "Run a CREATE TABLE statement",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableCreate,
}

var tableDropCmd = &cobra.Command{
	Use:   "drop [db] [table]",
	Short: "Drop a table if it exists",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableDrop,
}

var tableAddColumnCmd = &cobra.Command{
	Use:   "add-column [db] [table] [column] [type]",
	Short: "Add a column to a table",
	Args:  cobra.ExactArgs(4),
	RunE:  runTableAddColumn,
}

func init() {
	tableCmd.AddCommand(tableCreateCmd)
	tableCmd.AddCommand(tableDropCmd)
	tableCmd.AddCommand(tableAddColumnCmd)
	rootCmd.AddCommand(tableCmd)
}

func runTableCreate(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	return reportOK(cmd, databaseService.CreateTable(cmd.Context(), args[1], args[0]), "Table created.")
}

func runTableDrop(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	return reportOK(cmd, databaseService.DropTable(cmd.Context(), args[1], args[0]), "Table dropped.")
}

func runTableAddColumn(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	ok := databaseService.AddColumn(cmd.Context(), args[1], args[2], args[3], args[0])
	return reportOK(cmd, ok, "Column added.")
}

func reportOK(cmd *cobra.Command, ok bool, msg string) error {
	if !ok {
		return errStatementFailed
	}
	cmd.Println(msg)
	return nil
}
