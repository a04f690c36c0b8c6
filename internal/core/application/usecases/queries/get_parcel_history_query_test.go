package queries_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelHistoryQuery(t *testing.T) {
	query, err := queries.NewGetParcelHistoryQuery("PT-1042")

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "PT-1042", query.ParcelID())
}

func TestNewGetParcelHistoryQuery_EmptyParcelID(t *testing.T) {
	query, err := queries.NewGetParcelHistoryQuery("")

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrParcelIDIsRequired)
	assert.Error(t, query.Validate())
}
