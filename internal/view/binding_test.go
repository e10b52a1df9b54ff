package view_test

import (
	"testing"

	"github.com/ganot/taskboard/internal/domain/board"
	"github.com/ganot/taskboard/internal/view"
	"github.com/stretchr/testify/require"
)

func TestColumnBinding_FiltersByStatus(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)
	finished := view.NewColumnBinding(store, board.StatusFinished)

	first := store.CreateProject("Build API", "Design the REST layer", 3)
	second := store.CreateProject("Write docs", "User guide", 1)
	store.SetStatus(second, board.StatusFinished)

	activeProjects := active.Projects()
	require.Len(t, activeProjects, 1)
	require.Equal(t, first, activeProjects[0].ID)

	finishedProjects := finished.Projects()
	require.Len(t, finishedProjects, 1)
	require.Equal(t, second, finishedProjects[0].ID)
}

func TestColumnBinding_Fragment(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)

	id := store.CreateProject("Build API", "Design the REST layer", 3)

	fragment := active.Fragment()
	require.Contains(t, fragment, `id="column-active"`)
	require.Contains(t, fragment, `data-status="active"`)
	require.Contains(t, fragment, "Build API")
	require.Contains(t, fragment, `data-id="`+id+`"`)
	require.Contains(t, fragment, "3 people assigned")
}

func TestColumnBinding_FragmentEscapesHTML(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)

	store.CreateProject("<script>alert(1)</script>", "desc", 1)

	fragment := active.Fragment()
	require.NotContains(t, fragment, "<script>alert(1)</script>")
	require.Contains(t, fragment, "&lt;script&gt;")
}

func TestColumnBinding_EmptyBeforeMutation(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)

	require.Empty(t, active.Projects())
	require.Contains(t, active.Fragment(), "Active Projects")
	require.NotContains(t, active.Fragment(), "<li")
}

func TestColumnBinding_SingularPeople(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)

	store.CreateProject("Solo", "one person project", 1)
	require.Contains(t, active.Fragment(), "1 person assigned")
}

func TestColumnBinding_ProjectsReturnsCopy(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)

	store.CreateProject("Build API", "Design the REST layer", 3)

	projects := active.Projects()
	projects[0].Title = "mutated"
	require.Equal(t, "Build API", active.Projects()[0].Title)
}

func TestColumnBinding_ReactsToDrop(t *testing.T) {
	store := board.NewStore()
	active := view.NewColumnBinding(store, board.StatusActive)
	finished := view.NewColumnBinding(store, board.StatusFinished)

	id := store.CreateProject("Build API", "Design the REST layer", 3)
	require.Len(t, active.Projects(), 1)
	require.Empty(t, finished.Projects())

	store.SetStatus(id, board.StatusFinished)
	require.Empty(t, active.Projects())
	require.Len(t, finished.Projects(), 1)

	// no-op drop: nothing changes
	store.SetStatus(id, board.StatusFinished)
	require.Empty(t, active.Projects())
	require.Len(t, finished.Projects(), 1)
}
