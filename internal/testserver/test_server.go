// Package testserver wires a full board stack over an in-memory database
// for functional tests.
package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/ganot/taskboard/internal/domain/activity"
	"github.com/ganot/taskboard/internal/domain/board"
	"github.com/ganot/taskboard/internal/mcp"
	"github.com/ganot/taskboard/internal/sqlite"
	"github.com/ganot/taskboard/internal/transport"
	"github.com/ganot/taskboard/internal/view"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Store    *board.Store
	Board    *board.Service
	Activity *activity.Service
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	activityRepo := sqlite.NewActivityRepository(db)
	activitySvc := activity.NewService(activityRepo, nil)

	store := board.NewStore()
	boardSvc := board.NewService(store, activitySvc, nil)
	active := view.NewColumnBinding(store, board.StatusActive)
	finished := view.NewColumnBinding(store, board.StatusFinished)

	mcpServer := mcp.NewServer(mcp.Config{
		Board:    boardSvc,
		Active:   active,
		Finished: finished,
		Activity: activitySvc,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)

	server := httptest.NewServer(transport.NewServer(boardSvc, active, finished, mcpHandler, nil))
	t.Cleanup(server.Close)
	t.Cleanup(func() { db.Close() })

	return &TestServer{
		Server:   server,
		DB:       db,
		Store:    store,
		Board:    boardSvc,
		Activity: activitySvc,
	}
}
