package bookinstance

import (
	"time"

	"github.com/google/uuid"
)

// Status is the loan state of a copy. The set is closed; anything else is
// rejected at the form boundary.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

const dateMed = "Jan 2, 2006"

// BookInstance is one physical copy of a book. BookTitle is expanded from
// the books table on reads and is never written back.
type BookInstance struct {
	ID        uuid.UUID `json:"id"`
	BookID    uuid.UUID `json:"book_id"`
	Imprint   string    `json:"imprint"`
	Status    Status    `json:"status"`
	DueBack   time.Time `json:"due_back"`
	BookTitle string    `json:"book_title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (bi *BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

// DueBackFormatted renders the due date for display pages.
func (bi *BookInstance) DueBackFormatted() string {
	return bi.DueBack.Format(dateMed)
}

// DueBackForm renders the due date the way edit forms echo it back.
func (bi *BookInstance) DueBackForm() string {
	return bi.DueBack.Format("2006-01-02")
}
