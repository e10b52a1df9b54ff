package activity

import "context"

// Repository provides persistence for ledger entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context, opts ListOptions) ([]Entry, error)
}
