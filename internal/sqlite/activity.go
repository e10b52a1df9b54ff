package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/taskboard/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log inserts a new ledger entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO activity_log (project_id, activity_type, summary, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.ProjectID,
		entry.Type,
		entry.Summary,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}

	entry.CreatedAt = createdAt

	return nil
}

// List returns ledger entries matching the given filters, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, project_id, activity_type, summary, created_at
		FROM activity_log
	`

	args := []any{}
	conditions := []string{}

	if opts.ProjectID != "" {
		conditions = append(conditions, "project_id = ?")
		args = append(args, opts.ProjectID)
	}
	if len(opts.Types) > 0 {
		placeholders := "?"
		args = append(args, opts.Types[0])
		for _, typ := range opts.Types[1:] {
			placeholders += ", ?"
			args = append(args, typ)
		}
		conditions = append(conditions, "activity_type IN ("+placeholders+")")
	}

	if len(conditions) > 0 {
		query += " WHERE " + joinConditions(conditions)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.ProjectID,
			&entry.Type,
			&entry.Summary,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return entries, nil
}

func joinConditions(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	joined := conditions[0]
	for i := 1; i < len(conditions); i++ {
		joined += " AND " + conditions[i]
	}
	return joined
}
