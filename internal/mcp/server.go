// Package mcp exposes the task board to MCP clients.
package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/taskboard/internal/domain/activity"
	"github.com/ganot/taskboard/internal/domain/board"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// BoardService defines board operations needed by MCP.
type BoardService interface {
	CreateProject(ctx context.Context, req board.CreateRequest) (string, error)
	MoveProject(ctx context.Context, id string, status board.Status) bool
}

// ColumnReader provides the current contents of one column.
type ColumnReader interface {
	Projects() []board.Project
}

// ActivityService defines ledger operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Config contains server configuration.
type Config struct {
	Board    BoardService
	Active   ColumnReader
	Finished ColumnReader
	Activity ActivityService
	Logger   *slog.Logger
}

const serverInstructions = `Task board server. Projects live in one of two columns, active and
finished. Use create_project to add a project (it always starts in the
active column), move_project to drag it between columns, list_board to
read both columns, and get_recent_activity for the mutation ledger.
Moving a project to the column it is already in, or moving an unknown
id, is a silent no-op.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "taskboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
