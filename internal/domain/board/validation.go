package board

import "strings"

const (
	// MinPeople and MaxPeople bound the team size accepted by the create form.
	MinPeople = 1
	MaxPeople = 5
)

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Title       string
	Description string
	People      int
}

// ValidateCreateInput enforces the input contract ahead of the store:
// non-empty text fields and a team size within bounds. The store itself
// never re-validates.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrInvalidInput
	}
	if req.People < MinPeople || req.People > MaxPeople {
		return ErrInvalidInput
	}
	return nil
}
