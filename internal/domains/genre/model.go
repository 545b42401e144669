package genre

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the canonical catalog path for this genre.
func (g *Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}
