package activity

// ListOptions provides filtering options for listing ledger entries.
type ListOptions struct {
	ProjectID string
	Types     []Type
	Limit     int
	Offset    int
}
