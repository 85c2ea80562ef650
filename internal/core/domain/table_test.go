package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTable() *Table {
	return &Table{
		Columns: []Column{
			{Name: "key", Type: "TEXT"},
			{Name: "val", Type: "INTEGER"},
		},
		Rows: []Row{
			{"a", int64(1)},
			{"b", nil},
		},
	}
}

func TestTable_Len(t *testing.T) {
	assert.Equal(t, 2, testTable().Len())

	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
}

func TestTable_ColumnNames(t *testing.T) {
	assert.Equal(t, []string{"key", "val"}, testTable().ColumnNames())

	var nilTable *Table
	assert.Nil(t, nilTable.ColumnNames())
}

func TestTable_Strings(t *testing.T) {
	assert.Equal(t, [][]string{{"a", "1"}, {"b", ""}}, testTable().Strings())
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"bytes", []byte("blob"), "blob"},
		{"int64", int64(-42), "-42"},
		{"int", 7, "7"},
		{"int32", int32(3), "3"},
		{"float64", 1.5, "1.5"},
		{"float64 whole", float64(2), "2"},
		{"float32", float32(0.25), "0.25"},
		{"bool", true, "true"},
		{"time", ts, "2024-03-01 12:30:00"},
		{"time fraction", ts.Add(250 * time.Millisecond), "2024-03-01 12:30:00.25"},
		{"time offset", ts.In(time.FixedZone("", 2*3600)), "2024-03-01 14:30:00+02:00"},
		{"other", uint8(9), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}
