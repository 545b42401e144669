package author

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAuthor_Name(t *testing.T) {
	a := Author{FirstName: "Jane", LastName: "Austen"}
	assert.Equal(t, "Austen, Jane", a.Name())
}

func TestAuthor_Lifespan(t *testing.T) {
	tests := []struct {
		name     string
		birth    *time.Time
		death    *time.Time
		expected string
	}{
		{
			name:     "both dates",
			birth:    date(1775, time.December, 16),
			death:    date(1817, time.July, 18),
			expected: "Dec 16, 1775-Jul 18, 1817",
		},
		{
			name:     "living author",
			birth:    date(1965, time.July, 31),
			expected: "Jul 31, 1965-",
		},
		{
			name:     "death only",
			death:    date(1817, time.July, 18),
			expected: "-Jul 18, 1817",
		},
		{
			name:     "no dates",
			expected: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Author{DateOfBirth: tt.birth, DateOfDeath: tt.death}
			assert.Equal(t, tt.expected, a.Lifespan())
		})
	}
}

func TestAuthor_URL(t *testing.T) {
	id := uuid.New()
	a := Author{ID: id}
	assert.Equal(t, "/catalog/author/"+id.String(), a.URL())
}
