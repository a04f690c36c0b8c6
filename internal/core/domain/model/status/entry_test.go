package status_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/status"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry_ValidInput(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()

	// Act
	entry, err := status.NewEntry(id, "Exelot", "Delivered", "05")

	// Assert
	require.NoError(t, err)
	assert.True(t, entry.ID().IsEqual(id))
	assert.Equal(t, "Exelot", entry.Distributor())
	assert.Equal(t, "Delivered", entry.Name())
	assert.Equal(t, "05", entry.ClassificationCode())
	assert.True(t, entry.IsActive())
	assert.NoError(t, entry.Validate())
}

func TestNewEntry_InvalidInput(t *testing.T) {
	id := kernel.NewUUID()

	testCases := []struct {
		name               string
		id                 kernel.UUID
		distributor        string
		statusName         string
		classificationCode string
	}{
		{name: "zero id", distributor: "Exelot", statusName: "Delivered", classificationCode: "05"},
		{name: "empty distributor", id: id, statusName: "Delivered", classificationCode: "05"},
		{name: "empty name", id: id, distributor: "Exelot", classificationCode: "05"},
		{name: "empty code", id: id, distributor: "Exelot", statusName: "Delivered"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := status.NewEntry(tc.id, tc.distributor, tc.statusName, tc.classificationCode)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Nil(t, entry)
		})
	}
}

func TestRestoreEntry_RestoresActiveFlag(t *testing.T) {
	id := kernel.NewUUID()

	entry, err := status.RestoreEntry(id, "Exelot", "Delivered", "05", false)

	require.NoError(t, err)
	assert.False(t, entry.IsActive())
}

func TestEntry_Update(t *testing.T) {
	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	t.Run("replaces name and code", func(t *testing.T) {
		err := entry.Update("Handed over", "06")

		require.NoError(t, err)
		assert.Equal(t, "Handed over", entry.Name())
		assert.Equal(t, "06", entry.ClassificationCode())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := entry.Update("", "06")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		err := entry.Update("Handed over", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEntry_Deactivate_Idempotent(t *testing.T) {
	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	entry.Deactivate()
	assert.False(t, entry.IsActive())

	// Deactivating again is a no-op, not an error.
	entry.Deactivate()
	assert.False(t, entry.IsActive())
}

func TestEntry_Activate_ReversesDeactivation(t *testing.T) {
	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	entry.Deactivate()
	require.False(t, entry.IsActive())

	entry.Activate()
	assert.True(t, entry.IsActive())

	// Activating an active entry is a no-op.
	entry.Activate()
	assert.True(t, entry.IsActive())
}

func TestEntry_Validate_NotConstructed(t *testing.T) {
	var entry status.Entry

	err := entry.Validate()

	assert.ErrorIs(t, err, status.ErrEntryIsNotConstructed)
}
