package board

import (
	"fmt"
	"time"
)

// Status is the column a project sits in.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// ParseStatus checks boundary input against the closed status set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Project is a single board item. Identity is assigned at creation and
// never changes; only Status is mutable, and only through Store.SetStatus.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	People      int       `json:"people"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
