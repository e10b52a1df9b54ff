package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/taskboard/internal/domain/activity"
)

// Ledger records board mutations for the activity feed.
type Ledger interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Service fronts the store for the HTTP and MCP surfaces: it validates
// creation input, serializes mutations, and records activity. The store
// stays single-threaded; the service's mutex is what lets concurrent
// handlers share it.
type Service struct {
	mu        sync.Mutex
	store     *Store
	ledger    Ledger
	logger    *slog.Logger
	mutations uint64
}

// NewService creates a new board service around the given store.
func NewService(store *Store, ledger Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{store: store, ledger: ledger, logger: logger}
	// The store exposes no pull reads, so the service counts notifications
	// to tell a real transition from a no-op.
	store.Subscribe(func([]Project) { s.mutations++ })
	return s
}

// CreateProject validates the request and creates a new active project,
// returning its id.
func (s *Service) CreateProject(ctx context.Context, req CreateRequest) (string, error) {
	if err := ValidateCreateInput(req); err != nil {
		return "", err
	}

	s.mu.Lock()
	id := s.store.CreateProject(req.Title, req.Description, req.People)
	s.mu.Unlock()

	s.logger.Info("project created", "id", id, "people", req.People)

	if s.ledger != nil {
		_ = s.ledger.Log(ctx, &activity.Entry{
			ProjectID: id,
			Type:      activity.TypeProjectCreated,
			Summary:   fmt.Sprintf("created project %q", req.Title),
		})
	}

	return id, nil
}

// MoveProject drops a project into the given column and reports whether
// it actually changed column. Unknown ids and drops into the current
// column are silent no-ops, mirroring the store.
func (s *Service) MoveProject(ctx context.Context, id string, status Status) bool {
	s.mu.Lock()
	before := s.mutations
	s.store.SetStatus(id, status)
	moved := s.mutations != before
	s.mu.Unlock()

	if !moved {
		return false
	}

	s.logger.Info("project moved", "id", id, "status", string(status))

	if s.ledger != nil {
		_ = s.ledger.Log(ctx, &activity.Entry{
			ProjectID: id,
			Type:      activity.TypeStatusChanged,
			Summary:   fmt.Sprintf("moved project %s to %s", id, status),
		})
	}

	return true
}
