package dataset

import (
	"fmt"
	"time"

	"dataserve/models"
)

const (
	layoutISODate  = "2006-01-02"
	layoutUSDate   = "01/02/2006"
	layoutEUDate   = "02/01/2006"
	layoutLongDate = "January 2, 2006"
	layoutISOTime  = "2006-01-02T15:04:05"
	layoutReadable = "Mon, Jan 02 2006 03:04 PM"
)

// FormatError reports a record date field that could not be parsed.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FormatDates renders a record's birth_date and created_at in all seven
// textual formats. Records produced by a Generator always parse; the
// *FormatError path guards records sourced from outside.
func FormatDates(rec models.Record) (models.DateVariants, error) {
	birth, err := time.Parse(layoutISODate, rec.BirthDate)
	if err != nil {
		return models.DateVariants{}, &FormatError{Field: "birth_date", Value: rec.BirthDate, Err: err}
	}

	created, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		return models.DateVariants{}, &FormatError{Field: "created_at", Value: rec.CreatedAt, Err: err}
	}

	return variantsFrom(birth, created), nil
}

func variantsFrom(birth, created time.Time) models.DateVariants {
	return models.DateVariants{
		BirthDateISO:       birth.Format(layoutISODate),
		BirthDateUS:        birth.Format(layoutUSDate),
		BirthDateEU:        birth.Format(layoutEUDate),
		BirthDateLong:      birth.Format(layoutLongDate),
		CreatedAtISO:       created.Format(layoutISOTime),
		CreatedAtTimestamp: created.Unix(),
		CreatedAtReadable:  created.Format(layoutReadable),
	}
}
