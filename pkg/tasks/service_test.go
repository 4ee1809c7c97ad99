package tasks

import (
	"context"
	"testing"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client, nil), client
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Call Acme"})
	require.NoError(t, err)

	assert.Equal(t, "Call Acme", tsk.Title)
	assert.Equal(t, "medium", tsk.Priority)
	assert.Equal(t, "open", tsk.Status)
	assert.Empty(t, tsk.DueDate)
	assert.Empty(t, tsk.LeadIDs)
}

func TestListOrdersByDueDateNullsLast(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "No due date"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Later", DueDate: "2026-09-15"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Soon", DueDate: "2026-09-01"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, "owner-1", "", "")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Soon", tasks[0].Title)
	assert.Equal(t, "Later", tasks[1].Title)
	assert.Equal(t, "No due date", tasks[2].Title)
}

func TestListFilteredByLead(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{
		Title:   "Linked",
		LeadIDs: []string{"lead-1", "lead-2"},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Unlinked"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, "owner-1", "lead-1", "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Linked", tasks[0].Title)
}

func TestListFilteredByStatus(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	done, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Done"})
	require.NoError(t, err)
	_, err = svc.ToggleComplete(ctx, "owner-1", done.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Pending"})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, "owner-1", "", "completed")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Done", tasks[0].Title)
}

func TestToggleComplete(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Flip me"})
	require.NoError(t, err)

	toggled, err := svc.ToggleComplete(ctx, "owner-1", tsk.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", toggled.Status)

	toggled, err = svc.ToggleComplete(ctx, "owner-1", tsk.ID)
	require.NoError(t, err)
	assert.Equal(t, "open", toggled.Status)
}

func TestUpdateClearsDueDate(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{
		Title:   "Reschedule",
		DueDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", tsk.DueDate)

	empty := ""
	updated, err := svc.Update(ctx, "owner-1", tsk.ID, models.TaskUpdateRequest{DueDate: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.DueDate)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	tsk, err := svc.Create(ctx, "owner-1", models.TaskCreateRequest{Title: "Protected"})
	require.NoError(t, err)

	err = svc.Delete(ctx, "owner-2", tsk.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	require.NoError(t, svc.Delete(ctx, "owner-1", tsk.ID))

	tasks, err := svc.List(ctx, "owner-1", "", "")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
