package mcp

import (
	"context"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// mockDatabaseService is a mock implementation of driving.DatabaseService.
type mockDatabaseService struct {
	lastSQL   string
	lastName  string
	lastTable string
	lastExtra []string

	ok     bool
	status int
	row    []string
	scalar string
	column []string
	table  *domain.Table
	files  []domain.DatabaseFile
	tables []string
	closed int
}

func (m *mockDatabaseService) CreateFile(name string) { m.lastName = name }

func (m *mockDatabaseService) DeleteFile(name string) { m.lastName = name }

func (m *mockDatabaseService) ConnectionString(name string) string { return "mock/" + name }

func (m *mockDatabaseService) CreateTable(_ context.Context, sql, name string) bool {
	m.lastSQL, m.lastName = sql, name
	return m.ok
}

func (m *mockDatabaseService) DropTable(_ context.Context, table, name string) bool {
	m.lastTable, m.lastName = table, name
	return m.ok
}

func (m *mockDatabaseService) AddColumn(_ context.Context, table, column, columnType, name string) bool {
	m.lastTable, m.lastName = table, name
	m.lastExtra = []string{column, columnType}
	return m.ok
}

func (m *mockDatabaseService) Execute(_ context.Context, sql, name string) int {
	m.lastSQL, m.lastName = sql, name
	return m.status
}

func (m *mockDatabaseService) Row(_ context.Context, sql, name string) []string {
	m.lastSQL, m.lastName = sql, name
	return m.row
}

func (m *mockDatabaseService) Scalar(_ context.Context, sql, name string) string {
	m.lastSQL, m.lastName = sql, name
	return m.scalar
}

func (m *mockDatabaseService) Column(_ context.Context, sql, name string) []string {
	m.lastSQL, m.lastName = sql, name
	return m.column
}

func (m *mockDatabaseService) Table(_ context.Context, sql, name string) *domain.Table {
	m.lastSQL, m.lastName = sql, name
	return m.table
}

func (m *mockDatabaseService) ListDatabases() []domain.DatabaseFile { return m.files }

func (m *mockDatabaseService) Tables(_ context.Context, name string) []string {
	m.lastName = name
	return m.tables
}

func (m *mockDatabaseService) CloseConnection() { m.closed++ }
