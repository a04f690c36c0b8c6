package queries_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOverdueParcelsQuery(t *testing.T) {
	testCases := []struct {
		name      string
		threshold time.Duration
		wantErr   error
	}{
		{name: "valid threshold", threshold: 48 * time.Hour},
		{name: "zero threshold", threshold: 0, wantErr: queries.ErrThresholdIsInvalid},
		{name: "negative threshold", threshold: -time.Hour, wantErr: queries.ErrThresholdIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewGetOverdueParcelsQuery(tc.threshold)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Error(t, query.Validate())
				return
			}

			require.NoError(t, err)
			require.NoError(t, query.Validate())
			assert.Equal(t, tc.threshold, query.Threshold())
		})
	}
}

func TestGetOverdueParcelsQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetOverdueParcelsQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetOverdueParcelsQueryIsNotConstructed)
}
