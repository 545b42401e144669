package catalog

import (
	"context"

	"library-catalog/internal/domains/bookinstance"
)

// Counter is the one read the dashboard needs from each catalog domain.
// Every repository satisfies it with its Count method.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// CopyCounter adds the by-status count the dashboard shows next to the copy
// total. The bookinstance repository satisfies it directly.
type CopyCounter interface {
	Counter
	CountByStatus(ctx context.Context, status bookinstance.Status) (int64, error)
}

// DashboardPage is the home page view model: one count per record type plus
// the available-copies count.
type DashboardPage struct {
	Page                       string `json:"page"`
	Title                      string `json:"title"`
	BookCount                  int64  `json:"book_count"`
	BookInstanceCount          int64  `json:"book_instance_count"`
	BookInstanceAvailableCount int64  `json:"book_instance_available_count"`
	AuthorCount                int64  `json:"author_count"`
	GenreCount                 int64  `json:"genre_count"`
}

type Service interface {
	Dashboard(ctx context.Context) (*DashboardPage, error)
}
