package cli

import (
	"context"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// mockDatabaseService is a mock implementation of driving.DatabaseService
// that reports failure from every method.
type mockDatabaseService struct {
	lastSQL  string
	lastName string
	files    []domain.DatabaseFile
	closed   int
}

func (m *mockDatabaseService) CreateFile(name string) { m.lastName = name }

func (m *mockDatabaseService) DeleteFile(name string) { m.lastName = name }

func (m *mockDatabaseService) ConnectionString(name string) string { return "mock/" + name }

func (m *mockDatabaseService) CreateTable(_ context.Context, sql, name string) bool {
	m.lastSQL, m.lastName = sql, name
	return false
}

func (m *mockDatabaseService) DropTable(_ context.Context, _, name string) bool {
	m.lastName = name
	return false
}

func (m *mockDatabaseService) AddColumn(_ context.Context, _, _, _, name string) bool {
	m.lastName = name
	return false
}

func (m *mockDatabaseService) Execute(_ context.Context, sql, name string) int {
	m.lastSQL, m.lastName = sql, name
	return 0
}

func (m *mockDatabaseService) Row(_ context.Context, sql, name string) []string {
	m.lastSQL, m.lastName = sql, name
	return nil
}

func (m *mockDatabaseService) Scalar(_ context.Context, sql, name string) string {
	m.lastSQL, m.lastName = sql, name
	return ""
}

func (m *mockDatabaseService) Column(_ context.Context, sql, name string) []string {
	m.lastSQL, m.lastName = sql, name
	return nil
}

func (m *mockDatabaseService) Table(_ context.Context, sql, name string) *domain.Table {
	m.lastSQL, m.lastName = sql, name
	return nil
}

func (m *mockDatabaseService) ListDatabases() []domain.DatabaseFile { return m.files }

func (m *mockDatabaseService) Tables(_ context.Context, name string) []string {
	m.lastName = name
	return nil
}

func (m *mockDatabaseService) CloseConnection() { m.closed++ }
