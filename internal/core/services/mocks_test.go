package services

import (
	"context"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// mockDatabase is a mock implementation of driven.Database.
type mockDatabase struct {
	lastSQL  string
	lastName string

	affected int64
	row      []string
	scalar   string
	column   []string
	table    *domain.Table
	files    []domain.DatabaseFile
	tables   []string
	err      error
	closeErr error
	closed   int
}

func (m *mockDatabase) CreateFile(name string) error {
	m.lastName = name
	return m.err
}

func (m *mockDatabase) DeleteFile(name string) error {
	m.lastName = name
	return m.err
}

func (m *mockDatabase) ListFiles() ([]domain.DatabaseFile, error) {
	return m.files, m.err
}

func (m *mockDatabase) ConnectionString(name string) string {
	return "mock/" + name
}

func (m *mockDatabase) Exec(_ context.Context, name, sql string) (int64, error) {
	m.lastName, m.lastSQL = name, sql
	return m.affected, m.err
}

func (m *mockDatabase) QueryRow(_ context.Context, name, sql string) ([]string, error) {
	m.lastName, m.lastSQL = name, sql
	return m.row, m.err
}

func (m *mockDatabase) QueryScalar(_ context.Context, name, sql string) (string, error) {
	m.lastName, m.lastSQL = name, sql
	return m.scalar, m.err
}

func (m *mockDatabase) QueryColumn(_ context.Context, name, sql string) ([]string, error) {
	m.lastName, m.lastSQL = name, sql
	return m.column, m.err
}

func (m *mockDatabase) QueryTable(_ context.Context, name, sql string) (*domain.Table, error) {
	m.lastName, m.lastSQL = name, sql
	return m.table, m.err
}

func (m *mockDatabase) Tables(_ context.Context, name string) ([]string, error) {
	m.lastName = name
	return m.tables, m.err
}

func (m *mockDatabase) Close() error {
	m.closed++
	return m.closeErr
}
