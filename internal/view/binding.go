package view

import (
	"slices"
	"strings"
	"sync"

	"github.com/ganot/taskboard/internal/domain/board"
)

// ColumnBinding renders one status column. It subscribes to the store at
// construction and keeps the latest filtered snapshot together with its
// rendered HTML fragment; the board page re-fetches fragments after every
// mutation.
type ColumnBinding struct {
	status board.Status

	mu       sync.RWMutex
	projects []board.Project
	fragment string
}

// NewColumnBinding subscribes a binding for the given column.
func NewColumnBinding(store *board.Store, status board.Status) *ColumnBinding {
	b := &ColumnBinding{status: status}
	b.apply(nil)
	store.Subscribe(b.apply)
	return b
}

// Status returns the column this binding renders.
func (b *ColumnBinding) Status() board.Status {
	return b.status
}

// Projects returns a copy of the column's current contents.
func (b *ColumnBinding) Projects() []board.Project {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.projects)
}

// Fragment returns the column's rendered HTML.
func (b *ColumnBinding) Fragment() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fragment
}

// apply filters the snapshot down to this column and re-renders. It is
// the binding's store listener.
func (b *ColumnBinding) apply(snapshot []board.Project) {
	filtered := make([]board.Project, 0, len(snapshot))
	for _, proj := range snapshot {
		if proj.Status == b.status {
			filtered = append(filtered, proj)
		}
	}

	var buf strings.Builder
	if err := columnTmpl.Execute(&buf, columnData{
		Status:   b.status,
		Heading:  columnHeading(b.status),
		Projects: filtered,
	}); err != nil {
		// static template over plain values; failing to render it is a bug
		panic(err)
	}

	b.mu.Lock()
	b.projects = filtered
	b.fragment = buf.String()
	b.mu.Unlock()
}

func columnHeading(status board.Status) string {
	if status == board.StatusFinished {
		return "Finished Projects"
	}
	return "Active Projects"
}
