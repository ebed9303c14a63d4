package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"dataserve/models"

	"github.com/google/uuid"
)

const (
	alphanumeric      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	// Probability that a nullable field (score, description) is null.
	nullProbability = 0.5
)

var (
	emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "example.com", "test.org"}

	tagVocabulary = []string{
		"python", "javascript", "api", "web", "mobile", "data", "ai", "ml",
		"backend", "frontend", "database", "cloud", "devops", "security",
	}

	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance"}
	locations   = []string{"New York", "San Francisco", "London", "Tokyo", "Berlin"}
	skillPool   = []string{"Python", "Java", "React", "Node.js", "SQL", "Docker"}
)

// Generator produces synthetic records from an injected random source.
// A *rand.Rand is not safe for concurrent use, so construct one Generator
// per request rather than sharing one across goroutines.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from the wall clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator returns a fully deterministic Generator: the same seed
// produces the same sequence of records, UUIDs included.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Record generates the synthetic record at the given 1-based index.
// All bounded fields fall within their declared ranges and birth_date is
// always before created_at. Generation never fails.
func (g *Generator) Record(index int) models.Record {
	return g.record(index, time.Now().UTC())
}

// DatedRecord generates the record at the given index in the multi-date-
// format shape: created_at is a random 2020-2024 instant and both date
// fields are rendered in all seven textual formats.
func (g *Generator) DatedRecord(index int) models.DatedRecord {
	created := g.randomCreatedAt()
	rec := g.record(index, created)

	return models.DatedRecord{
		ID:           rec.ID,
		UUID:         rec.UUID,
		Name:         rec.Name,
		Email:        rec.Email,
		Age:          rec.Age,
		Height:       rec.Height,
		Weight:       rec.Weight,
		IsActive:     rec.IsActive,
		Balance:      rec.Balance,
		DateVariants: variantsFrom(g.randomBirthDate(), created),
		Tags:         rec.Tags,
		Metadata:     rec.Metadata,
		Score:        rec.Score,
		Description:  rec.Description,
	}
}

func (g *Generator) record(index int, created time.Time) models.Record {
	return models.Record{
		ID:          index,
		UUID:        g.randomUUID(),
		Name:        "User " + g.randString(6, alphanumeric),
		Email:       g.randString(8, lowerAlphanumeric) + "@" + emailDomains[g.rng.Intn(len(emailDomains))],
		Age:         18 + g.rng.Intn(63),
		Height:      g.randFloat(150.0, 200.0),
		Weight:      g.randFloat(45.0, 120.0),
		IsActive:    g.rng.Intn(2) == 0,
		Balance:     g.randFloat(0.0, 100000.0),
		BirthDate:   g.randomBirthDate().Format(layoutISODate),
		CreatedAt:   created.Format(time.RFC3339),
		Tags:        g.sample(tagVocabulary, 1+g.rng.Intn(5)),
		Metadata:    g.metadata(),
		Score:       g.maybeScore(),
		Description: g.maybeDescription(index),
	}
}

func (g *Generator) metadata() models.Metadata {
	return models.Metadata{
		Department:      departments[g.rng.Intn(len(departments))],
		Location:        locations[g.rng.Intn(len(locations))],
		ExperienceYears: 1 + g.rng.Intn(20),
		Skills:          g.sample(skillPool, 2+g.rng.Intn(3)),
		Certification:   g.rng.Intn(2) == 0,
		LastLogin:       time.Now().UTC().Format(time.RFC3339),
	}
}

// randomBirthDate picks a date with year in [1940, 2005] and day capped at
// 28 so every month is valid.
func (g *Generator) randomBirthDate() time.Time {
	year := 1940 + g.rng.Intn(66)
	month := time.Month(1 + g.rng.Intn(12))
	day := 1 + g.rng.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// randomCreatedAt picks an instant with year in [2020, 2024], always after
// any possible birth date.
func (g *Generator) randomCreatedAt() time.Time {
	year := 2020 + g.rng.Intn(5)
	month := time.Month(1 + g.rng.Intn(12))
	day := 1 + g.rng.Intn(28)
	hour := g.rng.Intn(24)
	minute := g.rng.Intn(60)
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func (g *Generator) maybeScore() *float64 {
	if g.rng.Float64() < nullProbability {
		return nil
	}
	score := g.randFloat(0.0, 100.0)
	return &score
}

func (g *Generator) maybeDescription(index int) *string {
	if g.rng.Float64() < nullProbability {
		return nil
	}
	desc := fmt.Sprintf("This is a sample description for user %d", index)
	return &desc
}

// Helper functions

// randomUUID draws the UUID from the generator's own source so seeded
// generators stay reproducible.
func (g *Generator) randomUUID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

func (g *Generator) randString(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.rng.Intn(len(charset))]
	}
	return string(b)
}

func (g *Generator) randFloat(min, max float64) float64 {
	return math.Round((min+g.rng.Float64()*(max-min))*100) / 100
}

// sample picks n distinct elements from pool, in shuffled order.
func (g *Generator) sample(pool []string, n int) []string {
	perm := g.rng.Perm(len(pool))
	picked := make([]string, n)
	for i := 0; i < n; i++ {
		picked[i] = pool[perm[i]]
	}
	return picked
}
