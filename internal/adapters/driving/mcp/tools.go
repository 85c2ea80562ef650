package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// StatementInput is the input schema for tools that take raw SQL.
type StatementInput struct {
	Database string `json:"database" jsonschema:"database file name inside the data directory, e.g. t.db"`
	SQL      string `json:"sql" jsonschema:"the SQL statement to run"`
}

// DropTableInput is the input schema for the drop_table tool.
type DropTableInput struct {
	Database string `json:"database" jsonschema:"database file name inside the data directory"`
	Table    string `json:"table" jsonschema:"name of the table to drop"`
}

// AddColumnInput is the input schema for the add_column tool.
type AddColumnInput struct {
	Database string `json:"database" jsonschema:"database file name inside the data directory"`
	Table    string `json:"table" jsonschema:"name of the table to alter"`
	Column   string `json:"column" jsonschema:"name of the new column"`
	Type     string `json:"type" jsonschema:"declared type of the new column, e.g. TEXT or INTEGER"`
}

// ListDatabasesInput is the (empty) input schema for list_databases.
type ListDatabasesInput struct{}

// OKOutput reports whether a schema operation succeeded.
type OKOutput struct {
	OK bool `json:"ok"`
}

// StatusOutput reports the status code of execute: 1 success, 0 failure.
type StatusOutput struct {
	Status int `json:"status"`
}

// RowOutput is the output schema for query_row.
type RowOutput struct {
	Found bool     `json:"found"`
	Row   []string `json:"row,omitempty"`
}

// ScalarOutput is the output schema for query_scalar.
type ScalarOutput struct {
	Value string `json:"value"`
}

// ColumnOutput is the output schema for query_column.
type ColumnOutput struct {
	OK     bool     `json:"ok"`
	Values []string `json:"values"`
}

// TableOutput is the output schema for query_table.
type TableOutput struct {
	OK      bool           `json:"ok"`
	Columns []ColumnSchema `json:"columns,omitempty"`
	Rows    [][]string     `json:"rows,omitempty"`
	Count   int            `json:"count"`
}

// ColumnSchema describes one result column.
type ColumnSchema struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// DatabasesOutput is the output schema for list_databases.
type DatabasesOutput struct {
	Databases []DatabaseInfo `json:"databases"`
	Count     int            `json:"count"`
}

// DatabaseInfo describes one database file.
type DatabaseInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_table",
		Description: "Run a CREATE TABLE statement against a database file",
	}, s.handleCreateTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drop_table",
		Description: "Drop a table if it exists",
	}, s.handleDropTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_column",
		Description: "Add a column to an existing table",
	}, s.handleAddColumn)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "execute",
		Description: "Run a statement that returns no rows (INSERT, UPDATE, DELETE, DDL)",
	}, s.handleExecute)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_row",
		Description: "Return the first row of a query as strings",
	}, s.handleQueryRow)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_scalar",
		Description: "Return the first value of the first row; empty when nothing matched or the query failed",
	}, s.handleQueryScalar)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_column",
		Description: "Return the first column of every row, in row order",
	}, s.handleQueryColumn)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_table",
		Description: "Return the full result set of a query with column names and types",
	}, s.handleQueryTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_databases",
		Description: "List the database files in the data directory",
	}, s.handleListDatabases)
}

func (s *Server) handleCreateTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, OKOutput, error) {
	ok := s.ports.Database.CreateTable(ctx, input.SQL, input.Database)
	return nil, OKOutput{OK: ok}, nil
}

func (s *Server) handleDropTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DropTableInput,
) (*mcp.CallToolResult, OKOutput, error) {
	ok := s.ports.Database.DropTable(ctx, input.Table, input.Database)
	return nil, OKOutput{OK: ok}, nil
}

func (s *Server) handleAddColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddColumnInput,
) (*mcp.CallToolResult, OKOutput, error) {
	ok := s.ports.Database.AddColumn(ctx, input.Table, input.Column, input.Type, input.Database)
	return nil, OKOutput{OK: ok}, nil
}

func (s *Server) handleExecute(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	status := s.ports.Database.Execute(ctx, input.SQL, input.Database)
	return nil, StatusOutput{Status: status}, nil
}

func (s *Server) handleQueryRow(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, RowOutput, error) {
	row := s.ports.Database.Row(ctx, input.SQL, input.Database)
	return nil, RowOutput{Found: row != nil, Row: row}, nil
}

func (s *Server) handleQueryScalar(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, ScalarOutput, error) {
	value := s.ports.Database.Scalar(ctx, input.SQL, input.Database)
	return nil, ScalarOutput{Value: value}, nil
}

func (s *Server) handleQueryColumn(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, ColumnOutput, error) {
	values := s.ports.Database.Column(ctx, input.SQL, input.Database)
	if values == nil {
		return nil, ColumnOutput{OK: false, Values: []string{}}, nil
	}
	return nil, ColumnOutput{OK: true, Values: values}, nil
}

func (s *Server) handleQueryTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatementInput,
) (*mcp.CallToolResult, TableOutput, error) {
	table := s.ports.Database.Table(ctx, input.SQL, input.Database)
	if table == nil {
		return nil, TableOutput{OK: false}, nil
	}
	return nil, tableOutput(table), nil
}

func (s *Server) handleListDatabases(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListDatabasesInput,
) (*mcp.CallToolResult, DatabasesOutput, error) {
	infos := databaseInfos(s.ports.Database.ListDatabases())
	return nil, DatabasesOutput{Databases: infos, Count: len(infos)}, nil
}

func tableOutput(table *domain.Table) TableOutput {
	out := TableOutput{
		OK:      true,
		Columns: make([]ColumnSchema, len(table.Columns)),
		Rows:    table.Strings(),
		Count:   table.Len(),
	}
	for i, c := range table.Columns {
		out.Columns[i] = ColumnSchema{Name: c.Name, Type: c.Type}
	}
	return out
}

func databaseInfos(files []domain.DatabaseFile) []DatabaseInfo {
	infos := make([]DatabaseInfo, len(files))
	for i, f := range files {
		infos[i] = DatabaseInfo{Name: f.Name, Size: f.Size}
		if !f.ModTime.IsZero() {
			infos[i].Modified = f.ModTime.UTC().Format(time.RFC3339)
		}
	}
	return infos
}
