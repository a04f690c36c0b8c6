package services_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/status"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionResolver_Apply_Success(t *testing.T) {
	// Arrange
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	changedAt := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

	p, err := parcel.NewParcel("PT-1042", "Exelot", "Received", "01", createdAt)
	require.NoError(t, err)

	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	// Act
	change, err := services.NewTransitionResolver().Apply(p, entry, nil, changedAt)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PT-1042", change.ParcelID)
	assert.Equal(t, "Received", change.OldStatus)
	assert.Equal(t, "Delivered", change.NewStatus)
	assert.Equal(t, "01", change.OldClassificationCode)
	assert.Equal(t, "05", change.NewClassificationCode)
	assert.Equal(t, changedAt, change.ChangedAt)

	// The parcel carries the new state with the same timestamp.
	assert.Equal(t, "Delivered", p.Status())
	assert.Equal(t, "05", p.ClassificationCode())
	assert.Equal(t, change.ChangedAt, p.StatusChangedAt())
}

func TestTransitionResolver_Apply_CommentsArePassedThrough(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	p, err := parcel.RestoreParcel("PT-1042", "Exelot", "Received", "01", "fragile", "", createdAt)
	require.NoError(t, err)

	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	comments := "left at pickup point"
	_, err = services.NewTransitionResolver().Apply(p, entry, &comments, createdAt.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "left at pickup point", p.Comments())
}

func TestTransitionResolver_Apply_DistributorMismatch(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	p, err := parcel.NewParcel("PT-1042", "Exelot", "Received", "01", createdAt)
	require.NoError(t, err)

	entry, err := status.NewEntry(kernel.NewUUID(), "OtherDist", "Delivered", "05")
	require.NoError(t, err)

	change, err := services.NewTransitionResolver().Apply(p, entry, nil, createdAt.Add(time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Zero(t, change)

	// No mutation on failure.
	assert.Equal(t, "Received", p.Status())
	assert.Equal(t, "01", p.ClassificationCode())
	assert.Equal(t, createdAt, p.StatusChangedAt())
}

func TestTransitionResolver_Apply_InactiveStatus(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	p, err := parcel.NewParcel("PT-1042", "Exelot", "Received", "01", createdAt)
	require.NoError(t, err)

	entry, err := status.RestoreEntry(kernel.NewUUID(), "Exelot", "Delivered", "05", false)
	require.NoError(t, err)

	change, err := services.NewTransitionResolver().Apply(p, entry, nil, createdAt.Add(time.Hour))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Zero(t, change)
	assert.Equal(t, "Received", p.Status())
}

func TestTransitionResolver_Apply_NotConstructedInputs(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	p, err := parcel.NewParcel("PT-1042", "Exelot", "Received", "01", createdAt)
	require.NoError(t, err)

	entry, err := status.NewEntry(kernel.NewUUID(), "Exelot", "Delivered", "05")
	require.NoError(t, err)

	t.Run("nil parcel", func(t *testing.T) {
		_, err := services.NewTransitionResolver().Apply(nil, entry, nil, createdAt)
		assert.ErrorIs(t, err, parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil entry", func(t *testing.T) {
		_, err := services.NewTransitionResolver().Apply(p, nil, nil, createdAt)
		assert.ErrorIs(t, err, status.ErrEntryIsNotConstructed)
	})
}
