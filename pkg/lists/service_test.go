package lists

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

func seedLead(t *testing.T, client *ent.Client, name string) string {
	t.Helper()
	l := client.Lead.Create().
		SetOwnerID("owner-1").
		SetName(name).
		SetCompany("Acme").
		SaveX(context.Background())
	return l.ID
}

func TestCreateListWithSeedLeads(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	a := seedLead(t, client, "Alpha")
	b := seedLead(t, client, "Beta")

	created, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{
		Name:    "Hot Prospects",
		LeadIDs: []string{a, b},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hot Prospects", created.Name)
	assert.Equal(t, 2, created.LeadCount)
}

func TestAddLeadsIsIdempotent(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	a := seedLead(t, client, "Alpha")
	created, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{Name: "Hot"})
	require.NoError(t, err)

	updated, err := svc.AddLeads(ctx, "owner-1", created.ID, []string{a})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.LeadCount)

	updated, err = svc.AddLeads(ctx, "owner-1", created.ID, []string{a, a})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.LeadCount)
}

func TestListCountsWithSingleGroupedQuery(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	a := seedLead(t, client, "Alpha")
	b := seedLead(t, client, "Beta")

	full, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{
		Name:    "Full",
		LeadIDs: []string{a, b},
	})
	require.NoError(t, err)
	empty, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{Name: "Empty"})
	require.NoError(t, err)

	lists, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, lists, 2)

	byID := map[string]int{}
	for _, l := range lists {
		byID[l.ID] = l.LeadCount
	}
	assert.Equal(t, 2, byID[full.ID])
	assert.Equal(t, 0, byID[empty.ID])
}

func TestRemoveLeadKeepsLead(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	a := seedLead(t, client, "Alpha")
	created, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{
		Name:    "Hot",
		LeadIDs: []string{a},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveLead(ctx, "owner-1", created.ID, a))

	lists, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, 0, lists[0].LeadCount)

	assert.Equal(t, 1, client.Lead.Query().CountX(ctx))
}

func TestDeleteListCascadesMembership(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	a := seedLead(t, client, "Alpha")
	created, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{
		Name:    "Doomed",
		LeadIDs: []string{a},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner-1", created.ID))

	assert.Equal(t, 0, client.ListMembership.Query().CountX(ctx))
	assert.Equal(t, 1, client.Lead.Query().CountX(ctx))
}

func TestDeleteRejectsOtherOwner(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", models.ListCreateRequest{Name: "Mine"})
	require.NoError(t, err)

	err = svc.Delete(ctx, "owner-2", created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
