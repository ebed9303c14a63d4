package dataset

import (
	"testing"
	"time"

	"dataserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDates(t *testing.T) {
	rec := models.Record{
		BirthDate: "2023-12-25",
		CreatedAt: "2023-12-25T10:30:00Z",
	}

	variants, err := FormatDates(rec)
	require.NoError(t, err)

	assert.Equal(t, "2023-12-25", variants.BirthDateISO)
	assert.Equal(t, "12/25/2023", variants.BirthDateUS)
	assert.Equal(t, "25/12/2023", variants.BirthDateEU)
	assert.Equal(t, "December 25, 2023", variants.BirthDateLong)
	assert.Equal(t, "2023-12-25T10:30:00", variants.CreatedAtISO)
	assert.Equal(t, time.Date(2023, 12, 25, 10, 30, 0, 0, time.UTC).Unix(), variants.CreatedAtTimestamp)
	assert.Equal(t, "Mon, Dec 25 2023 10:30 AM", variants.CreatedAtReadable)
}

func TestFormatDates_RoundTrip(t *testing.T) {
	gen := NewSeededGenerator(7)

	for index := 1; index <= 50; index++ {
		rec := gen.Record(index)

		variants, err := FormatDates(rec)
		require.NoError(t, err)

		parsed, err := time.ParseInLocation(layoutISOTime, variants.CreatedAtISO, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, variants.CreatedAtTimestamp, parsed.Unix())
	}
}

func TestFormatDates_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		record    models.Record
		wantField string
	}{
		{
			name:      "bad birth date",
			record:    models.Record{BirthDate: "not-a-date", CreatedAt: "2023-12-25T10:30:00Z"},
			wantField: "birth_date",
		},
		{
			name:      "bad created at",
			record:    models.Record{BirthDate: "2023-12-25", CreatedAt: "yesterday"},
			wantField: "created_at",
		},
		{
			name:      "empty fields",
			record:    models.Record{},
			wantField: "birth_date",
		},
		{
			name:      "wrong birth date layout",
			record:    models.Record{BirthDate: "25/12/2023", CreatedAt: "2023-12-25T10:30:00Z"},
			wantField: "birth_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatDates(tt.record)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.wantField, ferr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestFormatDates_PM(t *testing.T) {
	rec := models.Record{
		BirthDate: "1970-01-01",
		CreatedAt: "2024-06-15T23:45:00Z",
	}

	variants, err := FormatDates(rec)
	require.NoError(t, err)

	assert.Equal(t, "Sat, Jun 15 2024 11:45 PM", variants.CreatedAtReadable)
}
