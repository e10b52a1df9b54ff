package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/taskboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

type repoStub struct {
	logged []*activity.Entry
	listed []activity.Entry
	opts   activity.ListOptions
}

func (r *repoStub) Log(_ context.Context, entry *activity.Entry) error {
	r.logged = append(r.logged, entry)
	return nil
}

func (r *repoStub) List(_ context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	r.opts = opts
	return r.listed, nil
}

func TestActivityService_Log_StampsTime(t *testing.T) {
	ctx := context.Background()
	repo := &repoStub{}
	svc := activity.NewService(repo, nil)

	entry := &activity.Entry{ProjectID: "p1", Type: activity.TypeProjectCreated, Summary: "created"}
	require.NoError(t, svc.Log(ctx, entry))
	require.Len(t, repo.logged, 1)
	require.False(t, repo.logged[0].CreatedAt.IsZero())
}

func TestActivityService_Log_KeepsExplicitTime(t *testing.T) {
	ctx := context.Background()
	repo := &repoStub{}
	svc := activity.NewService(repo, nil)

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entry := &activity.Entry{ProjectID: "p1", Type: activity.TypeStatusChanged, Summary: "moved", CreatedAt: stamp}
	require.NoError(t, svc.Log(ctx, entry))
	require.Equal(t, stamp, repo.logged[0].CreatedAt)
}

func TestActivityService_Log_NilEntry(t *testing.T) {
	svc := activity.NewService(&repoStub{}, nil)
	require.ErrorIs(t, svc.Log(context.Background(), nil), activity.ErrInvalidInput)
}

func TestActivityService_Recent(t *testing.T) {
	ctx := context.Background()
	repo := &repoStub{listed: []activity.Entry{{ID: 2}, {ID: 1}}}
	svc := activity.NewService(repo, nil)

	entries, err := svc.Recent(ctx, activity.ListOptions{ProjectID: "p1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "p1", repo.opts.ProjectID)
	require.Equal(t, 10, repo.opts.Limit)
}
