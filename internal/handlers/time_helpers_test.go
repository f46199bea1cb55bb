package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-backoffice/internal/timezone"
)

func jsonUnmarshal(raw string, v any) error {
	return json.Unmarshal([]byte(raw), v)
}

func TestParseDate(t *testing.T) {
	loc := timezone.Location("America/Sao_Paulo")
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)

	for _, in := range []string{"2025-03-15", "15/03/2025", " 2025-03-15 ", "2025-03-15T00:00:00"} {
		got, err := parseDate(in, loc)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	got, err := parseDate("2025-03-15T03:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.Equal(t, loc, got.Location())

	for _, in := range []string{"", "15-03-2025", "2025/03/15", "amanhã"} {
		_, err := parseDate(in, loc)
		assert.ErrorIs(t, err, errInvalidDate, in)
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := parseOptionalDate(nil, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := "  "
	got, err = parseOptionalDate(&empty, time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	bad := "32/01/2025"
	_, err = parseOptionalDate(&bad, time.UTC)
	assert.Error(t, err)
}
