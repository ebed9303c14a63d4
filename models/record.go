package models

// Record is a single synthetic data object. Every field is regenerated per
// request; no record is ever persisted. Score and Description are nullable
// and serialize as JSON null when absent.
type Record struct {
	ID          int      `json:"id"`
	UUID        string   `json:"uuid"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Age         int      `json:"age"`
	Height      float64  `json:"height"`
	Weight      float64  `json:"weight"`
	IsActive    bool     `json:"is_active"`
	Balance     float64  `json:"balance"`
	BirthDate   string   `json:"birth_date"`
	CreatedAt   string   `json:"created_at"`
	Tags        []string `json:"tags"`
	Metadata    Metadata `json:"metadata"`
	Score       *float64 `json:"score"`
	Description *string  `json:"description"`
}

// Metadata is the nested object attached to every record.
type Metadata struct {
	Department      string   `json:"department"`
	Location        string   `json:"location"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Certification   bool     `json:"certification"`
	LastLogin       string   `json:"last_login"`
}

// DateVariants is a record's two date fields rendered in seven formats.
type DateVariants struct {
	BirthDateISO       string `json:"birth_date_iso"`
	BirthDateUS        string `json:"birth_date_us"`
	BirthDateEU        string `json:"birth_date_eu"`
	BirthDateLong      string `json:"birth_date_long"`
	CreatedAtISO       string `json:"created_at_iso"`
	CreatedAtTimestamp int64  `json:"created_at_timestamp"`
	CreatedAtReadable  string `json:"created_at_readable"`
}

// DatedRecord is a Record whose birth_date and created_at fields are
// replaced by the full set of DateVariants renderings.
type DatedRecord struct {
	ID       int     `json:"id"`
	UUID     string  `json:"uuid"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Age      int     `json:"age"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	IsActive bool    `json:"is_active"`
	Balance  float64 `json:"balance"`
	DateVariants
	Tags        []string `json:"tags"`
	Metadata    Metadata `json:"metadata"`
	Score       *float64 `json:"score"`
	Description *string  `json:"description"`
}
