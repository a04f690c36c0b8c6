package http

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCSVRows_Base64Content(t *testing.T) {
	csv := "ID,Status,Comments\nPT-1042,Delivered,left at pickup point\nPT-1043,Lost,\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(csv))

	rows, err := decodeCSVRows(encoded)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PT-1042", rows[0].ParcelID)
	assert.Equal(t, "Delivered", rows[0].Status)
	require.NotNil(t, rows[0].Comments)
	assert.Equal(t, "left at pickup point", *rows[0].Comments)

	assert.Equal(t, "PT-1043", rows[1].ParcelID)
	assert.Equal(t, "Lost", rows[1].Status)
	assert.Nil(t, rows[1].Comments)
}

func TestDecodeCSVRows_RawContentFallback(t *testing.T) {
	csv := "ID,Status\nPT-1042,Delivered\n"

	rows, err := decodeCSVRows(csv)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PT-1042", rows[0].ParcelID)
}

func TestDecodeCSVRows_HeaderVariants(t *testing.T) {
	// Header matching is case insensitive and accepts "Parcel ID".
	csv := "parcel id,STATUS,comments\nPT-1042,Delivered,\n"

	rows, err := decodeCSVRows(csv)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PT-1042", rows[0].ParcelID)
	assert.Equal(t, "Delivered", rows[0].Status)
}

func TestDecodeCSVRows_ShortRowsArePadded(t *testing.T) {
	// A row missing the status column is kept with an empty status, so the
	// import handler can report it as skipped instead of failing the upload.
	csv := "ID,Status\nPT-1042\nPT-1043,Delivered\n"

	rows, err := decodeCSVRows(csv)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "PT-1042", rows[0].ParcelID)
	assert.Empty(t, rows[0].Status)
	assert.Equal(t, "Delivered", rows[1].Status)
}

func TestDecodeCSVRows_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty content", content: ""},
		{name: "whitespace only", content: "   "},
		{name: "missing status column", content: "ID,Comments\nPT-1042,hello\n"},
		{name: "missing id column", content: "Status\nDelivered\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := decodeCSVRows(tc.content)

			require.Error(t, err)
			assert.Nil(t, rows)
		})
	}
}

func TestDecodeCSVRows_HeaderOnly(t *testing.T) {
	rows, err := decodeCSVRows("ID,Status\n")

	require.NoError(t, err)
	assert.Empty(t, rows)
}
