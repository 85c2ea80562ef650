package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseFile_IsEmpty(t *testing.T) {
	assert.True(t, DatabaseFile{Name: "t.db"}.IsEmpty())
	assert.False(t, DatabaseFile{Name: "t.db", Size: 4096}.IsEmpty())
}

func TestIsSidecar(t *testing.T) {
	assert.True(t, IsSidecar("t.db-wal"))
	assert.True(t, IsSidecar("t.db-shm"))
	assert.True(t, IsSidecar("t.db-journal"))
	assert.False(t, IsSidecar("t.db"))
	assert.Len(t, SidecarSuffixes(), 3)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("t.db"))
	assert.ErrorIs(t, ValidateName(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateName("   "), ErrInvalidInput)
}
