package board

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Listener receives a snapshot of the whole board after every mutation.
// Each invocation gets its own copy; mutating it has no effect on the
// store or on other listeners.
type Listener func(projects []Project)

// Store is the single source of truth for project existence and status.
// One Store is built in main and injected into every collaborator; it
// lives for the process and is never torn down.
//
// The store is not safe for concurrent use and carries no locking.
// Callers serialize mutations (Service does this for the HTTP and MCP
// surfaces). A listener that calls back into the store during its own
// notification is unsupported.
type Store struct {
	projects  []Project
	listeners []Listener
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a listener. Listeners are never removed and are
// notified in registration order. A panic in a listener propagates to
// the mutating caller; listeners registered after it do not run.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// CreateProject appends a new project in the active column and notifies
// listeners. It returns the generated project id.
func (s *Store) CreateProject(title, description string, people int) string {
	proj := Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
		CreatedAt:   time.Now(),
	}
	s.projects = append(s.projects, proj)
	s.notify()
	return proj.ID
}

// SetStatus moves a project to the given column. An unknown id and a
// move to the column the project is already in are both silent no-ops
// and notify nobody.
func (s *Store) SetStatus(id string, status Status) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == status {
			return
		}
		s.projects[i].Status = status
		s.notify()
		return
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(slices.Clone(s.projects))
	}
}
