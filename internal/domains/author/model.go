package author

import (
	"time"

	"github.com/google/uuid"
)

// dateMed matches the medium date rendering used across catalog pages.
const dateMed = "Jan 2, 2006"

type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	LastName    string     `json:"last_name" db:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death" db:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Name is the display name, "last_name, first_name". Derived on read,
// never persisted.
func (a *Author) Name() string {
	return a.LastName + ", " + a.FirstName
}

// Lifespan renders the birth to death range. Either side may be empty when
// the date is unknown.
func (a *Author) Lifespan() string {
	var span string
	if a.DateOfBirth != nil {
		span = a.DateOfBirth.Format(dateMed)
	}
	span += "-"
	if a.DateOfDeath != nil {
		span += a.DateOfDeath.Format(dateMed)
	}
	return span
}

// URL is the canonical catalog path for this author.
func (a *Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}
