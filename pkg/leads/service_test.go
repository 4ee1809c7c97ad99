package leads

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
	return NewService(client, nil, nil), client
}

func TestCreateLeadDefaults(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Unknown Lead", lead.Name)
	assert.Equal(t, "Unknown Company", lead.Company)
	assert.Equal(t, float64(0), lead.Value)
	assert.Equal(t, "new", lead.Stage)
	assert.Equal(t, "active", lead.Status)
	assert.NotEmpty(t, lead.ID)
}

func TestCreateLeadParsesFormattedValue(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name:    "Acme Deal",
		Company: "Acme",
		Value:   "$12,500.50",
	})
	require.NoError(t, err)
	assert.Equal(t, 12500.50, lead.Value)
}

func TestCreateLeadWonStageClosesStatus(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name:    "Closed Deal",
		Company: "Acme",
		Stage:   "won",
	})
	require.NoError(t, err)
	assert.Equal(t, "won", lead.Stage)
	assert.Equal(t, "closed", lead.Status)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0},
		{"number", float64(100), 100},
		{"int", 42, 42},
		{"plain string", "2500", 2500},
		{"currency string", "$1,200", 1200},
		{"decimal string", "99.99", 99.99},
		{"garbage string", "call me", 0},
		{"empty string", "", 0},
		{"negative clamped", float64(-50), 0},
		{"unsupported type", []int{1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.input))
		})
	}
}

func TestListScopedToOwner(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Mine", Company: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-2", models.LeadCreateRequest{Name: "Theirs", Company: "B"})
	require.NoError(t, err)

	leads, err := svc.List(ctx, "owner-1", "")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Mine", leads[0].Name)
}

func TestListFilteredByList(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	inList, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "In List", Company: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Not In List", Company: "B"})
	require.NoError(t, err)

	list := client.List.Create().SetOwnerID("owner-1").SetName("Hot").SaveX(ctx)
	client.ListMembership.Create().SetListID(list.ID).SetLeadID(inList.ID).SaveX(ctx)

	leads, err := svc.List(ctx, "owner-1", list.ID)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "In List", leads[0].Name)

	empty := client.List.Create().SetOwnerID("owner-1").SetName("Empty").SaveX(ctx)
	leads, err = svc.List(ctx, "owner-1", empty.ID)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestUpdateStageDerivesStatus(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Deal", Company: "A"})
	require.NoError(t, err)

	updated, err := svc.UpdateStage(ctx, "owner-1", lead.ID, "lost")
	require.NoError(t, err)
	assert.Equal(t, "lost", updated.Stage)
	assert.Equal(t, "closed", updated.Status)

	updated, err = svc.UpdateStage(ctx, "owner-1", lead.ID, "qualified")
	require.NoError(t, err)
	assert.Equal(t, "qualified", updated.Stage)
	assert.Equal(t, "active", updated.Status)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name:    "Original",
		Company: "Acme",
		Value:   float64(500),
	})
	require.NoError(t, err)

	newName := "Renamed"
	status := "cold"
	updated, err := svc.Update(ctx, "owner-1", lead.ID, models.LeadUpdateRequest{
		Name:   &newName,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "cold", updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, float64(500), updated.Value)
}

func TestUpdateRejectsOtherOwner(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Deal", Company: "A"})
	require.NoError(t, err)

	name := "Hijacked"
	_, err = svc.Update(ctx, "owner-2", lead.ID, models.LeadUpdateRequest{Name: &name})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteCascades(t *testing.T) {
	svc, client := setupTest(t)
	ctx := context.Background()

	lead, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Doomed", Company: "A"})
	require.NoError(t, err)
	keep, err := svc.Create(ctx, "owner-1", models.LeadCreateRequest{Name: "Keeper", Company: "A"})
	require.NoError(t, err)

	list := client.List.Create().SetOwnerID("owner-1").SetName("Hot").SaveX(ctx)
	client.ListMembership.Create().SetListID(list.ID).SetLeadID(lead.ID).SaveX(ctx)

	tsk := client.Task.Create().
		SetOwnerID("owner-1").
		SetTitle("Follow up").
		SetLeadIds([]string{lead.ID, keep.ID}).
		SaveX(ctx)

	require.NoError(t, svc.Delete(ctx, "owner-1", lead.ID))

	_, err = svc.Get(ctx, "owner-1", lead.ID)
	require.Error(t, err)

	count := client.ListMembership.Query().CountX(ctx)
	assert.Equal(t, 0, count)

	reloaded := client.Task.GetX(ctx, tsk.ID)
	assert.Equal(t, []string{keep.ID}, reloaded.LeadIds)
}

func TestOperationsRequireOwner(t *testing.T) {
	svc, _ := setupTest(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "", "")
	assert.Error(t, err)

	_, err = svc.Create(ctx, "", models.LeadCreateRequest{})
	assert.Error(t, err)

	err = svc.Delete(ctx, "", "some-id")
	assert.Error(t, err)
}
