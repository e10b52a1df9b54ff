package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/taskboard/internal/domain/activity"
	"github.com/ganot/taskboard/internal/domain/board"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultActivityLimit = 20

type createProjectInput struct {
	Title       string `json:"title" jsonschema:"required,Project title"`
	Description string `json:"description" jsonschema:"required,What the project is about"`
	People      int    `json:"people" jsonschema:"required,Number of people assigned (1-5)"`
}

type createProjectOutput struct {
	ID     string `json:"id" jsonschema:"Generated project ID"`
	Status string `json:"status" jsonschema:"Column the project starts in"`
}

type moveProjectInput struct {
	ID     string `json:"id" jsonschema:"required,Project ID"`
	Status string `json:"status" jsonschema:"required,Target column (active or finished)"`
}

type moveProjectOutput struct {
	Moved bool `json:"moved" jsonschema:"Whether the project actually changed column"`
}

type projectItem struct {
	ID          string `json:"id" jsonschema:"Project ID"`
	Title       string `json:"title" jsonschema:"Project title"`
	Description string `json:"description" jsonschema:"Project description"`
	People      int    `json:"people" jsonschema:"Number of people assigned"`
	Status      string `json:"status" jsonschema:"Column the project is in"`
}

type listBoardInput struct{}

type listBoardOutput struct {
	Active   []projectItem `json:"active" jsonschema:"Projects in the active column"`
	Finished []projectItem `json:"finished" jsonschema:"Projects in the finished column"`
}

type recentActivityInput struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"Filter by project ID"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum entries to return (default: 20)"`
}

type activityItem struct {
	ID        int64  `json:"id" jsonschema:"Entry ID"`
	ProjectID string `json:"project_id" jsonschema:"Project the entry is about"`
	Type      string `json:"type" jsonschema:"Entry type (project_created or status_changed)"`
	Summary   string `json:"summary" jsonschema:"Human-readable summary"`
	CreatedAt string `json:"created_at" jsonschema:"Entry timestamp (RFC 3339)"`
}

type recentActivityOutput struct {
	Entries []activityItem `json:"entries" jsonschema:"Ledger entries, newest first"`
	Count   int            `json:"count" jsonschema:"Number of entries returned"`
}

func registerTools(server *sdkmcp.Server, cfg Config) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project in the active column",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args createProjectInput) (*sdkmcp.CallToolResult, createProjectOutput, error) {
		id, err := cfg.Board.CreateProject(ctx, board.CreateRequest{
			Title:       args.Title,
			Description: args.Description,
			People:      args.People,
		})
		if err != nil {
			return nil, createProjectOutput{}, err
		}

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("Project created: %s", id)},
			},
		}, createProjectOutput{ID: id, Status: string(board.StatusActive)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_project",
		Description: "Move a project to the active or finished column. Unknown ids and moves to the current column are no-ops.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args moveProjectInput) (*sdkmcp.CallToolResult, moveProjectOutput, error) {
		status, err := board.ParseStatus(args.Status)
		if err != nil {
			return nil, moveProjectOutput{}, err
		}

		moved := cfg.Board.MoveProject(ctx, args.ID, status)
		text := fmt.Sprintf("Project %s moved to %s", args.ID, status)
		if !moved {
			text = fmt.Sprintf("No change for project %s", args.ID)
		}

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		}, moveProjectOutput{Moved: moved}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_board",
		Description: "List both board columns and their projects",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args listBoardInput) (*sdkmcp.CallToolResult, listBoardOutput, error) {
		out := listBoardOutput{
			Active:   toProjectItems(cfg.Active.Projects()),
			Finished: toProjectItems(cfg.Finished.Projects()),
		}

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("%d active, %d finished", len(out.Active), len(out.Finished))},
			},
		}, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get recent board activity entries, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, args recentActivityInput) (*sdkmcp.CallToolResult, recentActivityOutput, error) {
		limit := args.Limit
		if limit <= 0 {
			limit = defaultActivityLimit
		}

		entries, err := cfg.Activity.Recent(ctx, activity.ListOptions{
			ProjectID: args.ProjectID,
			Limit:     limit,
		})
		if err != nil {
			return nil, recentActivityOutput{}, err
		}

		out := recentActivityOutput{Entries: make([]activityItem, 0, len(entries))}
		for _, entry := range entries {
			out.Entries = append(out.Entries, activityItem{
				ID:        entry.ID,
				ProjectID: entry.ProjectID,
				Type:      string(entry.Type),
				Summary:   entry.Summary,
				CreatedAt: entry.CreatedAt.Format(time.RFC3339),
			})
		}
		out.Count = len(out.Entries)

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("%d activity entries", out.Count)},
			},
		}, out, nil
	})
}

func toProjectItems(projects []board.Project) []projectItem {
	items := make([]projectItem, 0, len(projects))
	for _, proj := range projects {
		items = append(items, projectItem{
			ID:          proj.ID,
			Title:       proj.Title,
			Description: proj.Description,
			People:      proj.People,
			Status:      string(proj.Status),
		})
	}
	return items
}
