package cli

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage database files",
	Long:  `Create, delete, and inspect database files in the data directory.`,
}

var dbCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a database file",
	Long:  `Creates the data directory and an empty database file. Existing files are left untouched.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDBCreate,
}

var dbDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a database file",
	Long:  `Deletes a database file and its journal files. Missing files are ignored.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDBDelete,
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List database files",
	Args:  cobra.NoArgs,
	RunE:  runDBList,
}

var dbDSNCmd = &cobra.Command{
	Use:   "dsn [name]",
	Short: "Print the connection string for a database file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBDSN,
}

var dbTablesCmd = &cobra.Command{
	Use:   "tables [name]",
	Short: "List the tables in a database file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBTables,
}

func init() {
	dbCmd.AddCommand(dbCreateCmd)
	dbCmd.AddCommand(dbDeleteCmd)
	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbDSNCmd)
	dbCmd.AddCommand(dbTablesCmd)
	rootCmd.AddCommand(dbCmd)
}

func runDBCreate(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	databaseService.CreateFile(args[0])
	cmd.Printf("Created %s\n", args[0])
	return nil
}

func runDBDelete(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	databaseService.DeleteFile(args[0])
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runDBList(cmd *cobra.Command, _ []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}

	files := databaseService.ListDatabases()
	if len(files) == 0 {
		cmd.Println("No databases found.")
		return nil
	}

	headers := []string{"NAME", "SIZE", "MODIFIED"}
	rows := make([][]string, len(files))
	for i, f := range files {
		modified := "-"
		if !f.ModTime.IsZero() {
			modified = humanize.RelTime(f.ModTime, time.Now(), "ago", "from now")
		}
		size := humanize.IBytes(uint64(f.Size))
		if f.IsEmpty() {
			size = "empty"
		}
		rows[i] = []string{f.Name, size, modified}
	}
	renderTable(cmd, headers, rows)
	return nil
}

func runDBDSN(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	cmd.Println(databaseService.ConnectionString(args[0]))
	return nil
}

func runDBTables(cmd *cobra.Command, args []string) error {
	if err := requireDatabase(); err != nil {
		return err
	}
	for _, t := range databaseService.Tables(cmd.Context(), args[0]) {
		cmd.Println(t)
	}
	return nil
}
