package queries_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickupDropoffReportQuery(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	query, err := queries.NewPickupDropoffReportQuery(
		[]string{"52", "73"}, from, to, []string{"Exelot"}, []string{"TLV-3"})

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, []string{"52", "73"}, query.Codes())
	assert.Equal(t, from, query.From())
	assert.Equal(t, to, query.To())
	assert.Equal(t, []string{"Exelot"}, query.Distributors())
	assert.Equal(t, []string{"TLV-3"}, query.Sites())
}

func TestNewPickupDropoffReportQuery_NoCodes(t *testing.T) {
	query, err := queries.NewPickupDropoffReportQuery(nil, time.Time{}, time.Time{}, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrHeldCodesAreRequired)
	assert.Error(t, query.Validate())
}
