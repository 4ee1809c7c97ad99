package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	"github.com/GitNimay/lumino-crm-vc/ent/task"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*Maintenance, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewMaintenance(client, nil), client
}

func TestSweepOrphanedMemberships(t *testing.T) {
	m, client := setupTest(t)
	ctx := context.Background()

	lead := client.Lead.Create().
		SetOwnerID("owner-1").SetName("Lead").SetCompany("Acme").
		SaveX(ctx)
	list := client.List.Create().
		SetOwnerID("owner-1").SetName("Hot").
		SaveX(ctx)

	client.ListMembership.Create().SetListID(list.ID).SetLeadID(lead.ID).SaveX(ctx)
	client.ListMembership.Create().SetListID(list.ID).SetLeadID("gone-lead").SaveX(ctx)
	client.ListMembership.Create().SetListID("gone-list").SetLeadID(lead.ID).SaveX(ctx)

	removed, err := m.SweepOrphanedMemberships(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining := client.ListMembership.Query().AllX(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, lead.ID, remaining[0].LeadID)
	assert.Equal(t, list.ID, remaining[0].ListID)
}

func TestSweepWithNoLeadsRemovesEverything(t *testing.T) {
	m, client := setupTest(t)
	ctx := context.Background()

	client.ListMembership.Create().SetListID("l1").SetLeadID("x1").SaveX(ctx)
	client.ListMembership.Create().SetListID("l2").SetLeadID("x2").SaveX(ctx)

	removed, err := m.SweepOrphanedMemberships(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, client.ListMembership.Query().CountX(ctx))
}

func TestArchiveStaleTasks(t *testing.T) {
	m, client := setupTest(t)
	ctx := context.Background()

	old := time.Now().Add(-45 * 24 * time.Hour)

	client.Task.Create().
		SetOwnerID("owner-1").SetTitle("Old done").
		SetStatus(task.StatusCompleted).SetCreatedAt(old).
		SaveX(ctx)
	client.Task.Create().
		SetOwnerID("owner-1").SetTitle("Old open").
		SetStatus(task.StatusOpen).SetCreatedAt(old).
		SaveX(ctx)
	client.Task.Create().
		SetOwnerID("owner-1").SetTitle("Fresh done").
		SetStatus(task.StatusCompleted).
		SaveX(ctx)

	archived, err := m.ArchiveStaleTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)

	assert.Equal(t, 1, client.Task.Query().Where(task.StatusEQ(task.StatusArchived)).CountX(ctx))
	assert.Equal(t, 1, client.Task.Query().Where(task.StatusEQ(task.StatusOpen)).CountX(ctx))
	assert.Equal(t, 1, client.Task.Query().Where(task.StatusEQ(task.StatusCompleted)).CountX(ctx))
}
